package impl

import (
	"sort"
	"sync"

	"dashboard/internal/usecase"
)

type listenerEntry struct {
	token    uint64
	listener usecase.NotificationListener
}

// listenerRegistry maps consumer keys to listeners. Registering under an existing
// key replaces the previous listener; each registration gets a fresh token so a
// stale handle cannot remove its replacement.
type listenerRegistry struct {
	mu      sync.Mutex
	entries map[string]listenerEntry
	next    uint64
}

func newListenerRegistry() *listenerRegistry {
	return &listenerRegistry{entries: make(map[string]listenerEntry)}
}

func (r *listenerRegistry) register(key string, listener usecase.NotificationListener) *listenerHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	r.entries[key] = listenerEntry{token: r.next, listener: listener}

	return &listenerHandle{registry: r, key: key, token: r.next}
}

func (r *listenerRegistry) remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
}

func (r *listenerRegistry) removeToken(key string, token uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[key]; ok && entry.token == token {
		delete(r.entries, key)
	}
}

func (r *listenerRegistry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]listenerEntry)
}

func (r *listenerRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

type keyedListener struct {
	key      string
	listener usecase.NotificationListener
}

// snapshot returns the current listeners ordered by key.
func (r *listenerRegistry) snapshot() []keyedListener {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]keyedListener, 0, len(r.entries))
	for key, entry := range r.entries {
		result = append(result, keyedListener{key: key, listener: entry.listener})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].key < result[j].key })

	return result
}

type listenerHandle struct {
	registry *listenerRegistry
	key      string
	token    uint64
	once     sync.Once
}

func (h *listenerHandle) Key() string {
	return h.key
}

func (h *listenerHandle) Dispose() {
	h.once.Do(func() {
		h.registry.removeToken(h.key, h.token)
	})
}
