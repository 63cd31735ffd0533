package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carboncell/user-auth/internal/api/metrics"
	"github.com/carboncell/user-auth/internal/core/domain"
)

const entryCacheKey = "directory:entries"

// EntryCache caches the public-apis directory entry list in Redis so that
// repeated proxy requests do not hammer the upstream.
type EntryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEntryCache wraps the given Redis client. A non-positive ttl falls back
// to five minutes.
func NewEntryCache(client *redis.Client, ttl time.Duration) *EntryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &EntryCache{client: client, ttl: ttl}
}

// Get returns the cached entry list, reporting whether it was present.
func (c *EntryCache) Get(ctx context.Context) ([]domain.APIEntry, bool, error) {
	raw, err := c.client.Get(ctx, entryCacheKey).Bytes()
	if err == redis.Nil {
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.DirectoryCacheTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var entries []domain.APIEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		metrics.DirectoryCacheTotal.WithLabelValues("error").Inc()
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
	return entries, true, nil
}

// Set stores the entry list, expiring after the configured TTL.
func (c *EntryCache) Set(ctx context.Context, entries []domain.APIEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, entryCacheKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
