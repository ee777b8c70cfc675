package log

import (
	"context"

	"github.com/go-logr/logr"
)

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}

func WithLogger(ctx context.Context, logger logr.Logger) context.Context {
	return logr.NewContext(ctx, logger)
}

// WithName stores a named child of the current logger in ctx.
func WithName(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, FromContext(ctx).WithName(name))
}
