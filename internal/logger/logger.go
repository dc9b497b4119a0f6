// Package logger configures the application logger and provides the
// request-scoped logger that the middleware installs in the request context.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger creates the application logger and installs it as the slog
// default. dev environments get colorized tint output; everything else gets
// JSON lines.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	if environment == "dev" {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	appLogger := slog.New(handler)
	slog.SetDefault(appLogger)
	return appLogger
}

// ParseLogLevel maps the LOG_LEVEL env var to a slog level (defaults to info).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type contextKey struct{}

// requestLog carries the request-scoped logger plus any attributes handlers
// want included in the final request log line.
type requestLog struct {
	logger *slog.Logger

	mu    sync.Mutex
	attrs []slog.Attr
}

// NewRequestContext returns a context carrying a request-scoped logger.
// Installed by the RequestLogger middleware.
func NewRequestContext(ctx context.Context, requestLogger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, &requestLog{logger: requestLogger})
}

// ContextRequestLogger returns the request-scoped logger from the context,
// falling back to the default logger outside a request.
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if rl, ok := ctx.Value(contextKey{}).(*requestLog); ok {
		return rl.logger
	}
	return slog.Default()
}

// ContextWithLogAttrs records attributes to be appended to the final request
// log line emitted by the RequestLogger middleware.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	rl, ok := ctx.Value(contextKey{}).(*requestLog)
	if !ok {
		return
	}
	rl.mu.Lock()
	rl.attrs = append(rl.attrs, attrs...)
	rl.mu.Unlock()
}

// ContextLogAttrs returns the attributes recorded during the request.
func ContextLogAttrs(ctx context.Context) []slog.Attr {
	rl, ok := ctx.Value(contextKey{}).(*requestLog)
	if !ok {
		return nil
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	attrs := make([]slog.Attr, len(rl.attrs))
	copy(attrs, rl.attrs)
	return attrs
}
