// Package server provides the HTTP server for the misconfig-lab demo app.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Routes map one-to-one to the misconfigurations the tool demonstrates.
// Handlers live in internal/server/handlers; middleware is in
// internal/server/middleware. The docs UI, GraphQL executor and static file
// server are mounted third-party sub-applications, not hand-rolled.
package server
