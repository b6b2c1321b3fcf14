package chain

import (
	"context"

	"go.uber.org/zap"

	"github.com/ib-77/resultk/internal/logging"
)

// WithLogger returns a copy of ctx whose chains log their steps to logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return logging.WithLogger(ctx, logger)
}
