// Package events owns the authoritative, sorted collection of a user's
// events and its lifecycle operations. One Store exists per authenticated
// session; every successful mutation persists the full collection through
// the storage port under a key scoped by user id.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"countdown/internal/countdown"
	"countdown/internal/models/domain"
	"countdown/internal/storage"
	"countdown/internal/utils/logger/sl"

	"github.com/google/uuid"
)

// AddEventInput carries the caller-validated fields for a new event. The
// transport layer enforces the form contract (non-empty title, valid future
// date) before calling Add; the store is a pure repository and does not
// re-validate.
type AddEventInput struct {
	Title       string
	Date        string
	Theme       string
	Description string
}

// UpdateEventInput is a partial update; nil fields are left untouched.
type UpdateEventInput struct {
	Title       *string
	Date        *string
	Theme       *string
	Description *string
}

// Store holds one user's event collection. Mutations on unknown ids are
// silent no-ops and persistence failures are logged and swallowed: the UI
// only ever issues mutations on ids it displayed, and a local storage
// failure is not transient-recoverable, so neither is worth surfacing.
type Store struct {
	log    *slog.Logger
	kv     storage.KV
	clock  countdown.Clock
	userID string

	mu     sync.RWMutex
	events []domain.Event
}

// NewStore loads the persisted collection for userID. A missing key or
// malformed payload yields an empty collection; the parse failure is logged,
// never propagated.
func NewStore(ctx context.Context, log *slog.Logger, kv storage.KV, clock countdown.Clock, userID string) *Store {
	s := &Store{
		log:    log,
		kv:     kv,
		clock:  clock,
		userID: userID,
	}
	s.load(ctx)
	return s
}

// UserID returns the id of the user owning this collection.
func (s *Store) UserID() string { return s.userID }

func (s *Store) key() string { return "events_" + s.userID }

func (s *Store) load(ctx context.Context) {
	op := "events.Store.load()"
	log := s.log.With(slog.String("op", op), slog.String("userID", s.userID))

	raw, ok, err := s.kv.Get(ctx, s.key())
	if err != nil {
		log.Error("failed to read persisted events", sl.Err(err))
		return
	}
	if !ok {
		return
	}

	var loaded []domain.Event
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		log.Error("malformed persisted events, starting empty", sl.Err(err))
		return
	}

	s.mu.Lock()
	s.events = loaded
	s.mu.Unlock()

	log.Debug("events loaded", slog.Int("count", len(loaded)))
}

// persistLocked serializes the full collection and writes it through the
// port. The caller must hold s.mu: mutation and persistence form one
// critical section, so concurrent mutations can never land their writes
// out of order.
func (s *Store) persistLocked(ctx context.Context) {
	op := "events.Store.persistLocked()"
	log := s.log.With(slog.String("op", op), slog.String("userID", s.userID))

	raw, err := json.Marshal(s.events)
	if err != nil {
		log.Error("failed to serialize events", sl.Err(err))
		return
	}

	if err := s.kv.Set(ctx, s.key(), string(raw)); err != nil {
		log.Error("failed to persist events", sl.Err(err))
	}
}

// Add creates an active event with a fresh id and persists the collection.
func (s *Store) Add(ctx context.Context, in AddEventInput) domain.Event {
	now := s.clock.Now()
	event := domain.Event{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Date:        in.Date,
		Theme:       strings.TrimSpace(in.Theme),
		Description: strings.TrimSpace(in.Description),
		Status:      domain.EventStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return event
}

// Update merges the non-nil fields into the matching event and refreshes
// updatedAt. Unknown id is a no-op.
func (s *Store) Update(ctx context.Context, id uuid.UUID, in UpdateEventInput) {
	s.mutate(ctx, id, func(e *domain.Event) {
		if in.Title != nil {
			e.Title = strings.TrimSpace(*in.Title)
		}
		if in.Date != nil {
			e.Date = *in.Date
		}
		if in.Theme != nil {
			e.Theme = strings.TrimSpace(*in.Theme)
		}
		if in.Description != nil {
			e.Description = strings.TrimSpace(*in.Description)
		}
	})
}

// Delete removes the event. Idempotent if the id is absent.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	removed := false
	for _, e := range s.events {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept

	if removed {
		s.persistLocked(ctx)
	}
}

// MarkCompleted resolves the event with the given completion status and
// stamps completedAt. Re-applying overwrites the previous resolution.
func (s *Store) MarkCompleted(ctx context.Context, id uuid.UUID, status domain.CompletionStatus) {
	s.mutate(ctx, id, func(e *domain.Event) {
		completedAt := s.clock.Now()
		e.Status = domain.EventStatusCompleted
		e.CompletionStatus = status
		e.CompletedAt = &completedAt
	})
}

// Reactivate returns a completed event to active, clearing the completion
// fields.
func (s *Store) Reactivate(ctx context.Context, id uuid.UUID) {
	s.mutate(ctx, id, func(e *domain.Event) {
		e.Status = domain.EventStatusActive
		e.CompletionStatus = ""
		e.CompletedAt = nil
	})
}

// mutate applies fn to the event with the given id, refreshes updatedAt and
// persists, all under one lock. Unknown id is a no-op.
func (s *Store) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		fn(&s.events[i])
		s.events[i].UpdatedAt = s.clock.Now()
		s.persistLocked(ctx)
		return
	}

	s.log.Debug("mutation on unknown event id ignored", slog.String("eventID", id.String()))
}

// Find returns the event with the given id.
func (s *Store) Find(id uuid.UUID) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

// List returns a sorted copy of the collection, recomputed on every read so
// it never drifts from current field state. Order: active events first,
// soonest date first; then completed events, most recently resolved first
// (completedAt, falling back to updatedAt). Equal keys keep their original
// relative order.
func (s *Store) List() []domain.Event {
	s.mu.RLock()
	sorted := make([]domain.Event, len(s.events))
	copy(sorted, s.events)
	s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.Status != b.Status {
			return a.Status == domain.EventStatusActive
		}

		if a.Status == domain.EventStatusActive {
			return eventDate(a).Before(eventDate(b))
		}

		return resolvedAt(a).After(resolvedAt(b))
	})

	return sorted
}

// eventDate parses the target date for sorting; unparseable dates collapse
// to the zero time so the order stays deterministic.
func eventDate(e domain.Event) time.Time {
	t, err := countdown.ParseISO(e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func resolvedAt(e domain.Event) time.Time {
	if e.CompletedAt != nil {
		return *e.CompletedAt
	}
	return e.UpdatedAt
}
