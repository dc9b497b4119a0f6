package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"golang.org/x/time/rate"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/appsec-training/misconfig-lab/internal/logger"
)

// RequestLogger installs a request-scoped logger in the context and emits one
// log line per request with the final status and duration. Handlers can
// attach extra attributes to that line via logger.ContextWithLogAttrs.
func RequestLogger(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := baseLogger.With(
				slog.String("request_id", chimiddleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			ctx := logger.NewRequestContext(r.Context(), reqLogger)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			}
			attrs = append(attrs, logger.ContextLogAttrs(ctx)...)

			reqLogger.LogAttrs(ctx, slog.LevelInfo, "request completed", attrs...)
		})
	}
}

// VerboseRecoverer converts handler panics into 500 responses instead of
// killing the connection.
//
// When verbose is set (the default) the response body carries the panic value
// and the full goroutine stack - the information-disclosure pattern this
// server exists to demonstrate. With verbose off the client gets a bare
// "Internal Server Error" and the diagnostics stay in the server log.
func VerboseRecoverer(verbose bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()

				reqLogger := logger.ContextRequestLogger(r.Context())
				reqLogger.Error("panic while serving request",
					slog.Any("panic", rec),
					slog.String("stack", string(stack)),
				)

				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)

				if verbose {
					fmt.Fprintf(w, "panic: %v\n\n%s", rec, stack)
					return
				}
				_, _ = w.Write([]byte("Internal Server Error"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders adds security-related headers to all responses.
//
// Shipping with enabled=false is one of the demonstrated misconfigurations:
// the hardening exists in the codebase but nobody turned it on.
func SecurityHeaders(enabled bool, environment string) func(http.Handler) http.Handler {
	if !enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if environment == "prod" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit limits requests per second. If requestsPerSecond <= 0, rate
// limiting is disabled - which is the default configuration and another of
// the insecure defaults on display.
func RateLimit(requestsPerSecond int32, burst int32) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), int(burst))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				reqLogger := logger.ContextRequestLogger(r.Context())
				reqLogger.Warn("Rate limit exceeded",
					slog.String("component", "RateLimit"),
					slog.String("remote_addr", r.RemoteAddr),
				)

				logger.ContextWithLogAttrs(r.Context(),
					slog.String("remote_addr", r.RemoteAddr),
				)

				http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
