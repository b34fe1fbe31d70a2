package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

const snapshotKey = "perf:snapshot"

// ErrCacheMiss is returned when no cached snapshot exists.
var ErrCacheMiss = errors.New("snapshot cache miss")

// SnapshotCache stores the performance snapshot in Redis with a short
// TTL. It is an optimization only: callers fall back to direct reads
// on any cache failure.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache wraps the shared Redis client.
func NewSnapshotCache(r *Redis, ttl time.Duration) *SnapshotCache {
	if r == nil {
		return &SnapshotCache{client: nil, ttl: ttl}
	}
	return &SnapshotCache{client: r.Client, ttl: ttl}
}

// Get fetches the cached snapshot, returning ErrCacheMiss when absent.
func (c *SnapshotCache) Get(ctx context.Context) (*domain.PerformanceSnapshot, error) {
	if c == nil || c.client == nil {
		return nil, ErrCacheMiss
	}
	raw, err := c.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	var snapshot domain.PerformanceSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Set stores the snapshot for the configured TTL.
func (c *SnapshotCache) Set(ctx context.Context, snapshot *domain.PerformanceSnapshot) error {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, raw, c.ttl).Err()
}

// Invalidate drops the cached snapshot after a write touches any of
// the aggregated tables.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, snapshotKey).Err()
}
