// Package redis holds the client backing the proxied-response cache. Session
// state never goes through here.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"bot-admin-panel/internal/common/config"
	"bot-admin-panel/internal/common/logger"
)

type Client struct {
	*redis.Client
}

// Open connects using the cache settings from the config and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg *config.Config) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	logger.Info().Str("addr", addr).Int("db", cfg.Redis.DB).Msg("Connected to redis")
	return &Client{Client: c}, nil
}
