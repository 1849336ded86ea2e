package persistence

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/config"
)

// Redis wraps the go-redis client. It backs the revocable share link store
// when SHARE_LINK_STORE=redis.
type Redis struct {
	Client *redis.Client
}

// NewRedis builds a client; an empty address leaves Redis disabled.
// Connectivity problems are logged, not fatal.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		return &Redis{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}

	return &Redis{Client: client}
}

// Enabled reports whether a client exists.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity; ErrDisabled when not configured.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return ErrDisabled
	}
	return r.Client.Ping(ctx).Err()
}
