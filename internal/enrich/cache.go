// README: Redis-backed image-URL cache keyed by item name.
package enrich

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores resolved image URLs so repeated lookups for the same
// attraction or hotel skip the image provider. Itineraries themselves are
// never cached; only the name → URL mapping is.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache wraps the given Redis client. A nil client yields a no-op cache.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) key(name string) string {
	return "voyago:image:" + name
}

// Get returns the cached URL for name, or "" on miss or any Redis failure.
func (c *Cache) Get(ctx context.Context, name string) string {
	if c == nil || c.rdb == nil {
		return ""
	}
	v, err := c.rdb.Get(ctx, c.key(name)).Result()
	if err != nil {
		return ""
	}
	return v
}

// Set records the URL for name, best-effort.
func (c *Cache) Set(ctx context.Context, name, url string) {
	if c == nil || c.rdb == nil || url == "" {
		return
	}
	_ = c.rdb.Set(ctx, c.key(name), url, c.ttl).Err()
}
