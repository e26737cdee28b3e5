package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	// EventStatusActive — the countdown is still running.
	EventStatusActive EventStatus = "active"
	// EventStatusCompleted — the user explicitly resolved the event.
	EventStatusCompleted EventStatus = "completed"
)

// CompletionStatus says how a completed event was resolved.
type CompletionStatus string

const (
	CompletionRealizado CompletionStatus = "realizado"
	CompletionCancelado CompletionStatus = "cancelado"
	CompletionRemarcado CompletionStatus = "remarcado"
)

// Valid reports whether s is one of the allowed completion statuses.
func (s CompletionStatus) Valid() bool {
	switch s {
	case CompletionRealizado, CompletionCancelado, CompletionRemarcado:
		return true
	default:
		return false
	}
}

// Event is the domain model of a user-scheduled occasion tracked by a
// countdown. Date keeps the ISO-8601 string the user entered; the countdown
// package owns its interpretation.
//
// CompletionStatus and CompletedAt are set iff Status == EventStatusCompleted.
type Event struct {
	ID               uuid.UUID        `json:"id"`
	Title            string           `json:"title"`
	Date             string           `json:"date"`
	Theme            string           `json:"theme,omitempty"`
	Description      string           `json:"description,omitempty"`
	Status           EventStatus      `json:"status"`
	CompletionStatus CompletionStatus `json:"completionStatus,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
}
