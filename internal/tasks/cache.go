package tasks

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const listKeyPrefix = "tasks:list:"

// ListCache is a read-through Redis cache for per-owner task lists. A nil
// *ListCache is valid and turns every operation into a no-op, so the
// service works unchanged when Redis is unavailable.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewListCache constructs a cache over the given client.
func NewListCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ListCache {
	if client == nil {
		return nil
	}
	return &ListCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached list for ownerID, if present. Cache errors are
// treated as misses.
func (c *ListCache) Get(ctx context.Context, ownerID string) ([]Task, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, listKeyPrefix+ownerID).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Debug("task list cache get", slog.Any("error", err))
		}
		return nil, false
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, false
	}
	return tasks, true
}

// Set stores the list for ownerID.
func (c *ListCache) Set(ctx context.Context, ownerID string, tasks []Task) {
	if c == nil {
		return
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKeyPrefix+ownerID, data, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Debug("task list cache set", slog.Any("error", err))
	}
}

// Invalidate drops the cached list for ownerID. Every mutation calls this.
func (c *ListCache) Invalidate(ctx context.Context, ownerID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, listKeyPrefix+ownerID).Err(); err != nil && c.logger != nil {
		c.logger.Debug("task list cache invalidate", slog.Any("error", err))
	}
}
