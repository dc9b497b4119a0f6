package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults.
//
// Every insecure behavior the server demonstrates is an explicit toggle
// rather than a hardcoded choice, because the workshop deployments drifted on
// these settings over time. The defaults are the insecure side - that is the
// point of the tool.
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=dev"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=3000"`
	LogLevel              string        `env:"LOG_LEVEL,default=debug"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`

	// demo assets
	SwaggerSpecPath string `env:"SWAGGER_SPEC_PATH,default=api/swagger.yaml"`
	FilesDir        string `env:"FILES_DIR,default=public"`

	// misconfiguration toggles
	ExposeDocsInProd bool  `env:"EXPOSE_DOCS_IN_PROD,default=true"`
	DirectoryListing bool  `env:"DIRECTORY_LISTING,default=true"`
	VerboseErrors    bool  `env:"VERBOSE_ERRORS,default=true"`
	SecurityHeaders  bool  `env:"SECURITY_HEADERS,default=false"`
	RateLimitRPS     int32 `env:"RATE_LIMIT_RPS,default=0"`
	RateLimitBurst   int32 `env:"RATE_LIMIT_BURST,default=0"`
}

var validEnvs = map[string]bool{
	"dev":  true,
	"test": true,
	"prod": true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateConfig checks for required env variables
func validateConfig(cfg *ServerEnvironment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if cfg.SwaggerSpecPath == "" {
		return fmt.Errorf("SWAGGER_SPEC_PATH must not be empty")
	}
	if cfg.FilesDir == "" {
		return fmt.Errorf("FILES_DIR must not be empty")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be 0 or greater")
	}
	return nil
}

// DocsEnabled reports whether the API documentation routes should be mounted.
// Some workshop deployments hide the docs in production; most leave them
// exposed, which is the variant the defaults reproduce.
func (c *ServerEnvironment) DocsEnabled() bool {
	if c.Environment == "prod" && !c.ExposeDocsInProd {
		return false
	}
	return true
}
