package impl

import (
	"sync"
	"time"

	"dashboard/internal/domain/entity"
)

type profileCacheEntry struct {
	profile  *entity.Profile
	storedAt time.Time
}

// ProfileCache is an id-keyed profile cache with a freshness window checked on read.
// Clear bumps the generation so a fetch started before the clear cannot repopulate it.
type ProfileCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	now        func() time.Time
	entries    map[string]profileCacheEntry
	generation uint64
}

// NewProfileCache creates a cache whose entries stay fresh for ttl.
func NewProfileCache(ttl time.Duration) *ProfileCache {
	return &ProfileCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]profileCacheEntry),
	}
}

// Get returns the cached profile for id when it is younger than the TTL.
func (c *ProfileCache) Get(id string) (*entity.Profile, bool) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		c.mu.Lock()
		if current, ok := c.entries[id]; ok && current.storedAt.Equal(entry.storedAt) {
			delete(c.entries, id)
		}
		c.mu.Unlock()

		return nil, false
	}

	return entry.profile, true
}

// Generation returns the current clear generation.
func (c *ProfileCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generation
}

// PutIfGeneration stores the profile only if no Clear happened since generation was read.
func (c *ProfileCache) PutIfGeneration(generation uint64, profile *entity.Profile) bool {
	if profile == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		return false
	}
	c.entries[profile.ID] = profileCacheEntry{profile: profile, storedAt: c.now()}

	return true
}

// Clear drops every entry.
func (c *ProfileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]profileCacheEntry)
	c.generation++
}

// Len returns the number of stored entries, fresh or not.
func (c *ProfileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Has reports whether an entry for id is stored, fresh or not.
func (c *ProfileCache) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[id]

	return ok
}
