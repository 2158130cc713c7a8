package external

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
)

// TieredCache puts a small in-process cache in front of a shared one.
// Tier 1 serves hot keys without a network round trip; tier 2 is shared
// between instances. Tier 2 failures are logged and treated as misses.
type TieredCache struct {
	memory *MemoryCache
	shared domain.ScanCache
	logger *logrus.Logger
}

// NewTieredCache layers memory over shared.
func NewTieredCache(logger *logrus.Logger, memory *MemoryCache, shared domain.ScanCache) *TieredCache {
	return &TieredCache{memory: memory, shared: shared, logger: logger}
}

// Get checks memory first, then the shared tier, promoting shared hits.
func (c *TieredCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if hit, _ := c.memory.Get(ctx, key, dest); hit {
		return true, nil
	}

	hit, err := c.shared.Get(ctx, key, dest)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Shared cache read failed")
		return false, nil
	}
	if hit {
		if err := c.memory.Set(ctx, key, dest, 0); err != nil {
			c.logger.WithError(err).Debug("Failed to promote cache entry")
		}
	}
	return hit, nil
}

// Set writes through to both tiers.
func (c *TieredCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := c.memory.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	if err := c.shared.Set(ctx, key, value, ttl); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Shared cache write failed")
	}
	return nil
}
