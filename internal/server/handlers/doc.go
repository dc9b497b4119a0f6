// Package handlers contains one handler per demonstrated misconfiguration
// (open admin route, fake actuator, crash route, unauthenticated config
// update, exposed API specification) plus the common infrastructure handlers
// (health, version, jwks, home page).
//
// Handlers that need dependencies are constructors returning an
// http.HandlerFunc; the rest are plain functions. Middleware is in
// internal/server/middleware.
package handlers
