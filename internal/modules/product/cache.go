package product

import (
	"context"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"

	"shipline/internal/types"
)

const (
	cacheTTL       = time.Minute
	localCacheSize = 1000
)

// Cache keeps hot product rows in Redis with a small in-process TinyLFU
// tier. Misses fall through to the store; writes and reservations delete the
// key rather than refresh it.
type Cache struct {
	cache *cache.Cache
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		cache: cache.New(&cache.Options{
			Redis:      client,
			LocalCache: cache.NewTinyLFU(localCacheSize, cacheTTL),
		}),
	}
}

func (c *Cache) Set(ctx context.Context, id types.ID, p *Product) error {
	return c.cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   cacheKey(id),
		Value: p,
		TTL:   cacheTTL,
	})
}

func (c *Cache) Get(ctx context.Context, id types.ID) (*Product, bool) {
	var p Product
	if err := c.cache.Get(ctx, cacheKey(id), &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *Cache) Delete(ctx context.Context, id types.ID) error {
	return c.cache.Delete(ctx, cacheKey(id))
}

func cacheKey(id types.ID) string {
	return "product:" + string(id)
}
