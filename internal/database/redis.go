package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisDialTimeout = 5 * time.Second
	// Reservations are single round trips; fail fast rather than stall a create.
	redisOpTimeout = 2 * time.Second
)

// NewRedisClient connects using redisURL and sizes the pool like the database
// pools. Explicit URL query options (pool_size, dial_timeout, ...) win.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}
	applyRedisPoolDefaults(opts)

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}

	return client, nil
}

func applyRedisPoolDefaults(opts *redis.Options) {
	if opts.PoolSize == 0 {
		opts.PoolSize = MaxConns
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = MinConns
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = MaxConnIdleTime
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = MaxConnLifetime
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = redisDialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = redisOpTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = redisOpTimeout
	}
}
