package cache

import (
	"context"

	"github.com/assetledger/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewLocker returns a Redis locker when Redis is configured and reachable.
// Otherwise it falls back to an in-memory locker, which only serialises
// sweeps within this process.
func NewLocker(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) Locker {
	if cfg.Host == "" {
		logger.Info("Redis not configured, using in-memory sweep lock")
		return NewInMemoryLocker()
	}

	locker, err := NewRedisLocker(ctx, RedisConfig{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory sweep lock. "+
			"Sweeps may overlap across instances.",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewInMemoryLocker()
	}

	logger.Info("Using Redis sweep lock", zap.String("addr", cfg.Addr()))
	return locker
}
