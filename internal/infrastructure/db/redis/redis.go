package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultConnectTimeout = 5 * time.Second

// Config captures the settings for reaching the record store.
type Config struct {
	Addr     string
	Password string
	DB       int
	// PoolSize bounds the connection pool; zero keeps the client default.
	PoolSize int
	// ConnectTimeout bounds the startup ping only. Individual store
	// operations carry their own per-call timeout.
	ConnectTimeout time.Duration
}

// Connect initialises a client and proves connectivity with a ping, so a
// misconfigured store address fails at startup instead of on the first
// request.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
