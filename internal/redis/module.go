// Package redis provides the optional client backing the price snapshot
// cache. Leaving the address unset disables caching entirely.
package redis

import (
	"context"

	"github.com/capquotelabs/capquote/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("redis",
	fx.Provide(NewClient),
)

func NewClient(cfg config.Config, log *zap.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		// The cache is an optimization; a dead redis must not block boot.
		log.Warn("redis unreachable, price snapshot cache disabled", zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}
