package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryCache is an in-process Cache used when no Redis is configured
type MemoryCache struct {
	items     *ttlcache.Cache[string, []byte]
	closeOnce sync.Once
}

// NewMemoryCache creates the cache and starts its expiration loop, stopped by Close
func NewMemoryCache() *MemoryCache {
	items := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)

	go items.Start()

	return &MemoryCache{items: items}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	item := c.items.Get(key)

	if item == nil {
		return nil, ErrCacheMiss
	}

	return append([]byte(nil), item.Value()...), nil
}

// Set stores value under key for ttl, a zero ttl skips caching
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.items.Set(key, append([]byte(nil), value...), ttl)

	return nil
}

func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		c.items.Stop()
		c.items.DeleteAll()
	})

	return nil
}
