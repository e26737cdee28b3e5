package dto

import (
	"time"

	"countdown/internal/countdown"
	"countdown/internal/models/domain"

	"github.com/google/uuid"
)

// EventResponse is the wire representation of an event. Timestamps are
// RFC3339 strings, matching the persisted format.
type EventResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Date             string     `json:"date"`
	Theme            string     `json:"theme,omitempty"`
	Description      string     `json:"description,omitempty"`
	Status           string     `json:"status"`
	CompletionStatus string     `json:"completionStatus,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// CreateEventRequest carries the add-event form.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Theme       string `json:"theme,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateEventRequest is a partial update; absent fields stay untouched.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Date        *string `json:"date,omitempty"`
	Theme       *string `json:"theme,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CompleteEventRequest says how the event was resolved.
type CompleteEventRequest struct {
	CompletionStatus string `json:"completionStatus"`
}

// CountdownResponse is one live snapshot of the remaining time.
type CountdownResponse struct {
	Days         int    `json:"days"`
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	Seconds      int    `json:"seconds"`
	State        string `json:"state"`
	RelativeText string `json:"relativeText"`
	Display      string `json:"display"`
}

// MapDomainToEventResponse converts a domain event to its wire form.
func MapDomainToEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Date:             e.Date,
		Theme:            e.Theme,
		Description:      e.Description,
		Status:           string(e.Status),
		CompletionStatus: string(e.CompletionStatus),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		CompletedAt:      e.CompletedAt,
	}
}

// MapDomainToEventResponseList converts a slice of domain events.
func MapDomainToEventResponseList(events []domain.Event) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, e := range events {
		result[i] = MapDomainToEventResponse(e)
	}
	return result
}

// MapCountdown assembles a countdown snapshot for an event date.
func MapCountdown(calc *countdown.Calculator, date string) CountdownResponse {
	b := calc.Until(date)
	return CountdownResponse{
		Days:         b.Days,
		Hours:        b.Hours,
		Minutes:      b.Minutes,
		Seconds:      b.Seconds,
		State:        string(calc.Classify(date)),
		RelativeText: calc.RelativeText(date),
		Display:      countdown.FormatBreakdown(b),
	}
}
