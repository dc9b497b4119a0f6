package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContextRequestLogger(t *testing.T) {
	reqLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := NewRequestContext(context.Background(), reqLogger)

	if got := ContextRequestLogger(ctx); got != reqLogger {
		t.Error("did not get the request-scoped logger back from the context")
	}

	// outside a request the default logger is returned
	if got := ContextRequestLogger(context.Background()); got == nil {
		t.Error("expected fallback logger, got nil")
	}
}

func TestContextLogAttrs(t *testing.T) {
	ctx := NewRequestContext(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	ContextWithLogAttrs(ctx, slog.String("remote_addr", "10.0.0.1"))
	ContextWithLogAttrs(ctx, slog.Int("retries", 2))

	attrs := ContextLogAttrs(ctx)
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	if attrs[0].Key != "remote_addr" {
		t.Errorf("got attr %q, want remote_addr", attrs[0].Key)
	}

	// contexts without a request logger are a no-op
	ContextWithLogAttrs(context.Background(), slog.String("ignored", "x"))
	if attrs := ContextLogAttrs(context.Background()); attrs != nil {
		t.Errorf("expected nil attrs outside a request, got %v", attrs)
	}
}
