package turnlock

import (
	"sync"
	"time"
)

type entry struct {
	mu       sync.Mutex
	lastUsed time.Time
}

// Registry hands out one mutex per conversation key so a customer's turn is
// processed to completion before the next one starts. Turns against
// different conversations proceed concurrently.
type Registry struct {
	entries map[string]*entry
	mutex   sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Lock blocks until the key's mutex is held.
func (r *Registry) Lock(key string) {
	r.mutex.RLock()
	e, exists := r.entries[key]
	r.mutex.RUnlock()

	if !exists {
		r.mutex.Lock()
		// Double-check pattern
		if e, exists = r.entries[key]; !exists {
			e = &entry{}
			r.entries[key] = e
		}
		r.mutex.Unlock()
	}

	e.mu.Lock()
	e.lastUsed = time.Now()
}

func (r *Registry) Unlock(key string) {
	r.mutex.RLock()
	e, exists := r.entries[key]
	r.mutex.RUnlock()

	if exists {
		e.mu.Unlock()
	}
}

// Cleanup removes entries that haven't been used recently. An entry whose
// mutex is currently held is never removed.
func (r *Registry) Cleanup() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now()
	for key, e := range r.entries {
		if !e.mu.TryLock() {
			continue
		}
		idle := now.Sub(e.lastUsed) > time.Hour
		e.mu.Unlock()
		if idle {
			delete(r.entries, key)
		}
	}
}

// StartCleanupRoutine starts a cleanup routine that runs periodically.
func (r *Registry) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			r.Cleanup()
		}
	}()
}
