package kv

import (
	"context"
	"time"

	"spending/internal/cache"
)

type cachedValue struct {
	value string
	ok    bool
}

// Cached is a read-through, write-through cache in front of a Store.
// Absent keys are cached too, so repeated misses stay local.
type Cached struct {
	inner Store
	lru   *cache.LRUCache[cachedValue]
}

var (
	_ Store         = (*Cached)(nil)
	_ cache.Cleaner = (*Cached)(nil)
)

// NewCached wraps inner with an LRU of maxSize entries living for ttl.
func NewCached(inner Store, maxSize int, ttl time.Duration) *Cached {
	return &Cached{inner: inner, lru: cache.NewLRUCache[cachedValue](maxSize, ttl)}
}

func (c *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if v, hit := c.lru.Get(key); hit {
		return v.value, v.ok, nil
	}
	value, ok, err := c.inner.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	c.lru.Set(key, cachedValue{value: value, ok: ok})
	return value, ok, nil
}

func (c *Cached) Set(ctx context.Context, key, value string) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		// The backend may or may not hold the new value now.
		c.lru.Delete(key)
		return err
	}
	c.lru.Set(key, cachedValue{value: value, ok: true})
	return nil
}

func (c *Cached) Remove(ctx context.Context, key string) error {
	c.lru.Delete(key)
	return c.inner.Remove(ctx, key)
}

// CleanExpired drops expired cache entries; it lets a cache.Manager sweep
// this store.
func (c *Cached) CleanExpired() int {
	return c.lru.CleanExpired()
}

// Len reports how many keys are cached.
func (c *Cached) Len() int {
	return c.lru.Size()
}
