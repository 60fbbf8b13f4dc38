package caching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrInvalidTTL = errors.New("cache ttl must be positive")

type RedisOption func(*redisCache)

// WithKeyPrefix scopes every key, so one redis can hold several services' entries.
func WithKeyPrefix(prefix string) RedisOption {
	return func(c *redisCache) {
		c.prefix = prefix + ":"
	}
}

type redisCache struct {
	redis  *redis.Client
	prefix string
}

func (c *redisCache) key(key string) string {
	return c.prefix + key
}

func (c *redisCache) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTTL, ttl)
	}

	return c.redis.SetEx(ctx, c.key(key), value, ttl).Err()
}

// Fetch returns nil without error when the key is absent.
func (c *redisCache) Fetch(ctx context.Context, key string) ([]byte, error) {
	value, err := c.redis.Get(ctx, c.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}

	return value, nil
}
