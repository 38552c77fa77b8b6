// Package cache keeps rendered dashboard views in Redis so repeat page
// loads skip the store. Mutations invalidate the whole view namespace.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dashboard:"

type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewViewCache(rdb *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached view bytes, or nil on a miss.
func (c *ViewCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores one view under the cache TTL.
func (c *ViewCache) Set(ctx context.Context, key string, b []byte) error {
	return c.rdb.Set(ctx, keyPrefix+key, b, c.ttl).Err()
}

// InvalidateViews removes every cached view (cache invalidation on write).
func (c *ViewCache) InvalidateViews(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
