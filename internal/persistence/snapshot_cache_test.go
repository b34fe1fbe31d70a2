package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCacheWithoutRedisIsInert(t *testing.T) {
	cache := NewSnapshotCache(nil, 0)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, cache.Set(context.Background(), nil))
	assert.NoError(t, cache.Invalidate(context.Background()))
}
