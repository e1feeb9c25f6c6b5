package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is not found in the cache
var ErrCacheMiss = errors.New("cache miss")

// Cache stores rendered exports
type Cache interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with optional expiration
	// If ttl is 0, the value will not be cached
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases any resources used by the cache
	Close() error
}

// New connects to Redis at redisAddr, or returns an in-process cache when it is empty
func New(ctx context.Context, redisAddr string) (Cache, error) {
	if redisAddr == "" {
		return NewMemoryCache(), nil
	}

	return NewRedisCache(ctx, redisAddr)
}
