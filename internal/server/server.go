package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/appsec-training/misconfig-lab/internal/config"
	"github.com/appsec-training/misconfig-lab/internal/demo"
	"github.com/appsec-training/misconfig-lab/internal/graph"
	"github.com/appsec-training/misconfig-lab/internal/keys"
	"github.com/appsec-training/misconfig-lab/internal/openapi"
	"github.com/appsec-training/misconfig-lab/internal/server/handlers"
	"github.com/appsec-training/misconfig-lab/internal/server/middleware"
	"github.com/appsec-training/misconfig-lab/internal/version"
)

type Server struct {
	config     *config.ServerEnvironment
	logger     *slog.Logger
	router     *chi.Mux
	state      *demo.State
	spec       *openapi.Document
	keys       *keys.KeyPair
	instanceID uuid.UUID
}

func NewServer(
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) (*Server, error) {
	spec, err := openapi.Load(cfg.SwaggerSpecPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load API specification: %w", err)
	}

	keyPair, err := keys.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}

	server := &Server{
		config:     cfg,
		logger:     logger,
		router:     chi.NewRouter(),
		state:      demo.NewState(),
		spec:       spec,
		keys:       keyPair,
		instanceID: uuid.New(),
	}

	server.setupMiddleware()
	if err := server.registerRoutes(); err != nil {
		return nil, err
	}

	return server, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.RequestLogger(s.logger))

	// Any origin may call any route. This is the demonstrated
	// misconfiguration, not an oversight.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	s.router.Use(middleware.VerboseRecoverer(s.config.VerboseErrors))
	s.router.Use(middleware.SecurityHeaders(s.config.SecurityHeaders, s.config.Environment))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
}

func (s *Server) registerRoutes() error {
	s.router.Get("/", handlers.HandleHome(s.config, s.state))
	s.router.Get("/hello", handlers.HandleHello)
	s.router.Get("/admin", handlers.HandleAdmin)
	s.router.Get("/crash", handlers.HandleCrash)
	s.router.Get("/actuator/env", handlers.HandleActuatorEnv(s.config.Environment, s.instanceID, s.keys.PrivateJWK))

	s.router.Get("/health", handlers.HandleHealth)
	s.router.Get("/version", handlers.HandleVersion(version.Get()))
	s.router.Get("/.well-known/jwks.json", handlers.HandleJWKS(s.keys.PublicSet))

	s.router.Post("/api/update-config", handlers.HandleUpdateConfig(s.state))

	if s.config.DocsEnabled() {
		s.registerDocsRoutes()
	} else {
		s.logger.Info("API documentation routes disabled",
			slog.String("environment", s.config.Environment))
	}

	gqlHandler, err := graph.NewHandler()
	if err != nil {
		return fmt.Errorf("failed to build GraphQL schema: %w", err)
	}
	s.router.Handle("/graphql", gqlHandler)

	s.fileServer("/files", http.Dir(s.config.FilesDir))

	return nil
}

// registerDocsRoutes mounts /swagger.json and the interactive docs UI under
// its three historical aliases.
func (s *Server) registerDocsRoutes() {
	s.router.Get("/swagger.json", handlers.HandleSwaggerSpec(s.spec))

	docsUI := httpSwagger.Handler(httpSwagger.URL("/swagger.json"))

	for _, prefix := range []string{"/api-docs", "/swagger"} {
		s.router.Get(prefix, http.RedirectHandler(prefix+"/index.html", http.StatusMovedPermanently).ServeHTTP)
		s.router.Get(prefix+"/*", docsUI)
	}
	s.router.Get("/swagger-ui.html", http.RedirectHandler("/api-docs/index.html", http.StatusMovedPermanently).ServeHTTP)
}

// fileServer serves the shared-files directory at the given prefix, directory
// listings included unless DIRECTORY_LISTING is turned off.
func (s *Server) fileServer(path string, root http.FileSystem) {
	if !s.config.DirectoryListing {
		root = noListFileSystem{root}
	}

	s.router.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
	s.router.Get(path+"/*", func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

// noListFileSystem wraps a http.FileSystem and suppresses directory listings
// for the deployments that turned them off.
type noListFileSystem struct {
	base http.FileSystem
}

type noListFile struct {
	http.File
}

func (f noListFile) Readdir(count int) ([]os.FileInfo, error) {
	return nil, nil
}

func (fs noListFileSystem) Open(name string) (http.File, error) {
	f, err := fs.base.Open(name)
	if err != nil {
		return nil, err
	}
	return noListFile{f}, nil
}
