package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecomfire/storefront-api/internal/infrastructure/config"
)

// pingTimeout bounds the boot-time connectivity check.
const pingTimeout = 5 * time.Second

// Connect opens the store backing session carts and the token denylist. Both
// concerns are TTL-driven, so losing this store loses open carts and revives
// nothing worse than signed-out tokens; the boot-time ping still treats an
// unreachable store as fatal because every cart route depends on it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
