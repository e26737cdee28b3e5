package events

import (
	"context"
	"log/slog"
	"sync"

	"countdown/internal/countdown"
	"countdown/internal/storage"
)

// Manager tracks the store of the currently authenticated user. It follows
// identity changes from the session provider: login opens a store loaded
// from persistence, logout drops the in-memory store without touching the
// persisted data. Switching users therefore always yields a disjoint
// collection.
type Manager struct {
	log   *slog.Logger
	kv    storage.KV
	clock countdown.Clock

	mu      sync.RWMutex
	current *Store
}

func NewManager(log *slog.Logger, kv storage.KV, clock countdown.Clock) *Manager {
	return &Manager{
		log:   log,
		kv:    kv,
		clock: clock,
	}
}

// Open loads the collection for userID and makes it the current store.
func (m *Manager) Open(ctx context.Context, userID string) *Store {
	op := "events.Manager.Open()"
	log := m.log.With(slog.String("op", op))

	store := NewStore(ctx, m.log, m.kv, m.clock, userID)

	m.mu.Lock()
	m.current = store
	m.mu.Unlock()

	log.Info("session store opened", slog.String("userID", userID))
	return store
}

// Close drops the current in-memory store. Persisted data stays intact.
func (m *Manager) Close() {
	op := "events.Manager.Close()"

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	m.log.With(slog.String("op", op)).Info("session store closed")
}

// Current returns the active session's store, if any.
func (m *Manager) Current() (*Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current, m.current != nil
}
