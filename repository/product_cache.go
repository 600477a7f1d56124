package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/azamatleskhan01/fastdelivery/entity"

	"github.com/redis/go-redis/v9"
)

const (
	marketCacheKey = "market:products"
	marketCacheTTL = 5 * time.Minute
)

// ProductCache keeps the available-product listing in Redis. A nil client
// disables the cache and every call becomes a no-op miss.
type ProductCache struct{ RDB *redis.Client }

func NewProductCache(rdb *redis.Client) *ProductCache { return &ProductCache{RDB: rdb} }

func (c *ProductCache) Get(ctx context.Context) ([]entity.Product, bool) {
	if c == nil || c.RDB == nil {
		return nil, false
	}
	raw, err := c.RDB.Get(ctx, marketCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var out []entity.Product
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *ProductCache) Set(ctx context.Context, products []entity.Product) {
	if c == nil || c.RDB == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	c.RDB.Set(ctx, marketCacheKey, raw, marketCacheTTL)
}

// Invalidate drops the listing after any product mutation.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.RDB == nil {
		return
	}
	c.RDB.Del(ctx, marketCacheKey)
}
