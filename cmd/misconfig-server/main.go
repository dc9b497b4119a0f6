package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/appsec-training/misconfig-lab/internal/config"
	"github.com/appsec-training/misconfig-lab/internal/logger"
	"github.com/appsec-training/misconfig-lab/internal/server"
	"github.com/appsec-training/misconfig-lab/internal/version"
)

//	@title			misconfig-lab
//	@description	misconfig-lab is an intentionally insecure HTTP server used as
//	@description	training material for the "security misconfiguration" risk class.
//	@description
//	@description	## What it demonstrates
//	@description	- API documentation exposed without access control
//	@description	- GraphQL with introspection and GraphiQL enabled
//	@description	- Fake actuator endpoint leaking credentials and the signing key
//	@description	- Unauthenticated admin route and config mutation
//	@description	- Stack traces returned to the caller on unhandled faults
//	@description	- Open directory listing of a static file share
//	@description	- Wildcard cross-origin policy on every route
//	@description
//	@description	## Do not deploy this
//	@description	The insecure behaviors are configuration defaults on purpose.
//	@description	Run it on a closed network for training sessions only.
//	@license.name	MIT

//	@servers.url			http://localhost:3000
//	@servers.description	Local training instance

//	@accept		json
//	@produce	json

//	@tag.name			Misconfiguration
//	@tag.description	Endpoints that each demonstrate one insecure default

//	@tag.name			Demo
//	@tag.description	Harmless supporting endpoints (home page, hello)

//	@tag.name			Common
//	@tag.description	Server infrastructure endpoints (health, version, jwks)

func main() {
	cmd := &cobra.Command{
		Use:   "misconfig-server",
		Short: "Intentionally insecure demo HTTP server",
		Long:  `misconfig-server exposes a set of deliberate security misconfigurations for training sessions. Never expose it to an untrusted network.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("SWAGGER_SPEC_PATH", cfg.SwaggerSpecPath),
		slog.String("FILES_DIR", cfg.FilesDir),
		slog.Bool("EXPOSE_DOCS_IN_PROD", cfg.ExposeDocsInProd),
		slog.Bool("DIRECTORY_LISTING", cfg.DirectoryListing),
		slog.Bool("VERBOSE_ERRORS", cfg.VerboseErrors),
		slog.Bool("SECURITY_HEADERS", cfg.SecurityHeaders),
	)

	appLogger.Warn("this server is intentionally insecure - training use only")

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// configure the server
	srv, err := server.NewServer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// start the server
	if err := srv.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
