package external

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultMemoryCacheSize = 1000

// MemoryCache is an in-process LRU cache with expiry. Entries live for at
// most maxTTL regardless of the TTL passed to Set.
type MemoryCache struct {
	lru        *expirable.LRU[string, []byte]
	defaultTTL time.Duration
}

// NewMemoryCache creates a cache holding up to size entries.
func NewMemoryCache(size int, maxTTL time.Duration) *MemoryCache {
	if size <= 0 {
		size = defaultMemoryCacheSize
	}
	if maxTTL <= 0 {
		maxTTL = defaultCacheTTL
	}
	return &MemoryCache{
		lru:        expirable.NewLRU[string, []byte](size, nil, maxTTL),
		defaultTTL: maxTTL,
	}
}

// Get loads the value stored under key into dest.
func (c *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.lru.Get(key)
	if !ok {
		return false, nil
	}
	if !decodeCacheEntry(raw, dest) {
		c.lru.Remove(key)
		return false, nil
	}
	return true, nil
}

// Set stores value under key.
func (c *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 || ttl > c.defaultTTL {
		ttl = c.defaultTTL
	}
	data, err := newCacheEntry(value, ttl)
	if err != nil {
		return err
	}
	c.lru.Add(key, data)
	return nil
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}
