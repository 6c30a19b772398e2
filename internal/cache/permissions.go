// Package cache holds the read-through permission cache. The store remains
// the source of truth; cached sets are short-lived and invalidated whenever a
// grant changes.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "perms:"

// PermissionCache stores aggregated permission name sets per user.
type PermissionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPermissionCache builds a cache around an optional redis client. A nil
// client disables caching entirely.
func NewPermissionCache(client *redis.Client, ttlSeconds int, logger *zap.Logger) *PermissionCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &PermissionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		logger: logger,
	}
}

// Get returns the cached permission set for a user, or ok=false on miss.
// Cache errors are logged and treated as misses so authentication never
// depends on redis availability.
func (c *PermissionCache) Get(ctx context.Context, userID string) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("permission cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, false
	}
	return names, true
}

// Set stores the permission set for a user.
func (c *PermissionCache) Set(ctx context.Context, userID string, names []string) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+userID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("permission cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached set for a user after a grant mutation.
func (c *PermissionCache) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, keyPrefix+userID).Err(); err != nil {
		c.logger.Warn("permission cache invalidation failed", zap.Error(err))
	}
}
