package impl

import (
	"testing"
	"time"

	"dashboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfileCache(ttl time.Duration) (*ProfileCache, *fakeClock) {
	clock := newFakeClock()
	cache := NewProfileCache(ttl)
	cache.now = clock.Now

	return cache, clock
}

func TestProfileCache_ExpiresOnRead(t *testing.T) {
	cache, clock := newTestProfileCache(5 * time.Minute)
	profile := &entity.Profile{ID: "u1", Role: entity.RoleManager}

	require.True(t, cache.PutIfGeneration(cache.Generation(), profile))

	clock.Advance(4*time.Minute + 59*time.Second)
	got, ok := cache.Get("u1")
	require.True(t, ok)
	assert.Same(t, profile, got)

	clock.Advance(time.Second)
	_, ok = cache.Get("u1")
	assert.False(t, ok)
	assert.False(t, cache.Has("u1"), "expired entry should be evicted on read")
}

func TestProfileCache_ClearRejectsOlderGeneration(t *testing.T) {
	cache, _ := newTestProfileCache(time.Minute)

	generation := cache.Generation()
	require.True(t, cache.PutIfGeneration(generation, entity.DefaultProfile("u1")))

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	assert.False(t, cache.PutIfGeneration(generation, entity.DefaultProfile("u2")))
	assert.False(t, cache.Has("u2"))
	assert.True(t, cache.PutIfGeneration(cache.Generation(), entity.DefaultProfile("u2")))
}

func TestProfileCache_IgnoresNilProfile(t *testing.T) {
	cache, _ := newTestProfileCache(time.Minute)

	assert.False(t, cache.PutIfGeneration(cache.Generation(), nil))
	assert.Equal(t, 0, cache.Len())
}
