package external

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Hour

// cacheEntry is the envelope stored for every cached value.
type cacheEntry struct {
	Data      json.RawMessage `json:"data"`
	CachedAt  time.Time       `json:"cached_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func newCacheEntry(value interface{}, ttl time.Duration) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache data: %w", err)
	}
	now := time.Now()
	return json.Marshal(cacheEntry{Data: data, CachedAt: now, ExpiresAt: now.Add(ttl)})
}

// decodeCacheEntry unpacks raw into dest. It reports false for corrupted or
// expired entries.
func decodeCacheEntry(raw []byte, dest interface{}) bool {
	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return false
	}
	if time.Now().After(entry.ExpiresAt) {
		return false
	}
	return json.Unmarshal(entry.Data, dest) == nil
}

// RedisCache stores scan results in Redis so that several server instances
// share them.
type RedisCache struct {
	redis      *redis.Client
	prefix     string
	defaultTTL time.Duration
}

// NewRedisCache connects to redisURL and verifies the connection.
func NewRedisCache(ctx context.Context, redisURL string, defaultTTL time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if defaultTTL <= 0 {
		defaultTTL = defaultCacheTTL
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{redis: client, prefix: "sanum", defaultTTL: defaultTTL}, nil
}

// Get loads the value stored under key into dest.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	k := c.key(key)

	val, err := c.redis.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get cache entry: %w", err)
	}

	if !decodeCacheEntry(val, dest) {
		c.redis.Del(ctx, k)
		return false, nil
	}
	return true, nil
}

// Set stores value under key for ttl, or the default TTL when ttl is zero.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	data, err := newCacheEntry(value, ttl)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.key(key), data, ttl).Err()
}

// Ping checks if the Redis connection is alive
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.redis.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.redis.Close()
}

// key hashes the caller's key so URLs of any length map to a short,
// fixed-size Redis key.
func (c *RedisCache) key(key string) string {
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%s:cache:%x", c.prefix, hash[:12])
}
