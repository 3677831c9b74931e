package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey is the context key under which a logger travels. An unexported
// struct type cannot collide with keys from other packages.
type loggerKey struct{}

// WithLogger attaches a logger to the context. The runner and everything
// below it read the logger back with FromContext, so the CLI configures
// logging once and never threads a logger through call chains.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, falling back to the
// package default when ctx carries none. Safe to call with a nil context.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
