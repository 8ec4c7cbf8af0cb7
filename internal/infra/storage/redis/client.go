// Package redis implements the optional simulation cache on top of Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// defaultSimulationTTL bounds how long a simulation result may be served
// from cache. Pending transactions are short-lived, so entries are too.
const defaultSimulationTTL = 30 * time.Second

type client struct {
	conn          *redis.Client
	simulationTTL time.Duration
}

type config struct {
	simulationTTL time.Duration
}

// Option configures the Redis client.
type Option func(*config)

// WithSimulationTTL sets the lifetime of cached simulation results.
// Default: 30 seconds.
func WithSimulationTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.simulationTTL = ttl
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{simulationTTL: defaultSimulationTTL}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:          conn,
		simulationTTL: cfg.simulationTTL,
	}, nil
}
