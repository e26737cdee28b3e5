package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"countdown/internal/countdown"
	"countdown/internal/events"
	"countdown/internal/models/domain"
	"countdown/internal/transport/httpServer/handlers/dto"
	"countdown/internal/utils"
	"countdown/internal/utils/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EventHandler struct {
	sessions   Sessions
	calc       *countdown.Calculator
	log        *slog.Logger
	tickPeriod time.Duration
}

func NewEventHandler(log *slog.Logger, sessions Sessions, calc *countdown.Calculator) *EventHandler {
	return &EventHandler{
		sessions:   sessions,
		calc:       calc,
		log:        log,
		tickPeriod: time.Second,
	}
}

// ListEvents handles GET /api/v1/events.
// The order is fixed: active events soonest-first, then completed events
// most-recently-resolved first.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.ListEvents()"
	log := h.log.With(slog.String("op", op))

	store, ok := h.store(log, w)
	if !ok {
		return
	}

	response := dto.MapDomainToEventResponseList(store.List())

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// CreateEvent handles POST /api/v1/events.
// The form contract is enforced here, not in the store: title must be
// non-empty after trimming and the date must parse to a real future date.
// Violations come back as field-level messages and no event is created.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.CreateEvent()"
	log := h.log.With(slog.String("op", op))

	store, ok := h.store(log, w)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}

	if fieldErrors := h.validateCreate(req); len(fieldErrors) > 0 {
		if err := utils.Json(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors}); err != nil {
			log.Error("error encoding response", sl.Err(err))
		}
		return
	}

	event := store.Add(r.Context(), events.AddEventInput{
		Title:       req.Title,
		Date:        req.Date,
		Theme:       req.Theme,
		Description: req.Description,
	})

	log.Info("event created",
		slog.String("eventID", event.ID.String()),
		slog.String("date", event.Date),
	)

	if err := utils.Json(w, http.StatusCreated, dto.MapDomainToEventResponse(event)); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// UpdateEvent handles PUT /api/v1/events/{eventId}. Partial: absent fields
// keep their value. An unknown id is a no-op by design.
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.UpdateEvent()"
	log := h.log.With(slog.String("op", op))

	store, ok := h.store(log, w)
	if !ok {
		return
	}

	eventID, ok := h.eventID(log, w, r)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}

	if req.Date != nil && !h.calc.IsValidDate(*req.Date) {
		h.respondError(log, fmt.Errorf("invalid date: %s", *req.Date), w, http.StatusBadRequest)
		return
	}

	store.Update(r.Context(), eventID, events.UpdateEventInput{
		Title:       req.Title,
		Date:        req.Date,
		Theme:       req.Theme,
		Description: req.Description,
	})

	h.respondOK(log, w)
}

// DeleteEvent handles DELETE /api/v1/events/{eventId}. Idempotent.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.DeleteEvent()"
	log := h.log.With(slog.String("op", op))

	store, ok := h.store(log, w)
	if !ok {
		return
	}

	eventID, ok := h.eventID(log, w, r)
	if !ok {
		return
	}

	log.Info("deleting event", slog.String("eventID", eventID.String()))
	store.Delete(r.Context(), eventID)

	h.respondOK(log, w)
}

// CompleteEvent handles PUT /api/v1/events/{eventId}/complete.
func (h *EventHandler) CompleteEvent(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.CompleteEvent()"
	log := h.log.With(slog.String("op", op))

	store, ok := h.store(log, w)
	if !ok {
		return
	}

	eventID, ok := h.eventID(log, w, r)
	if !ok {
		return
	}

	var req dto.CompleteEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}

	status := domain.CompletionStatus(req.CompletionStatus)
	if !status.Valid() {
		h.respondError(log, fmt.Errorf("invalid completion status: %s", req.CompletionStatus), w, http.StatusBadRequest)
		return
	}

	log.Info("completing event",
		slog.String("eventID", eventID.String()),
		slog.String("completionStatus", req.CompletionStatus),
	)
	store.MarkCompleted(r.Context(), eventID, status)

	h.respondOK(log, w)
}

// ReactivateEvent handles PUT /api/v1/events/{eventId}/reactivate.
func (h *EventHandler) ReactivateEvent(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.ReactivateEvent()"
	log := h.log.With(slog.String("op", op))

	store, ok := h.store(log, w)
	if !ok {
		return
	}

	eventID, ok := h.eventID(log, w, r)
	if !ok {
		return
	}

	log.Info("reactivating event", slog.String("eventID", eventID.String()))
	store.Reactivate(r.Context(), eventID)

	h.respondOK(log, w)
}

// GetCountdown handles GET /api/v1/events/{eventId}/countdown with a single
// snapshot of the remaining time.
func (h *EventHandler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetCountdown()"
	log := h.log.With(slog.String("op", op))

	event, ok := h.findEvent(log, w, r)
	if !ok {
		return
	}

	if err := utils.Json(w, http.StatusOK, dto.MapCountdown(h.calc, event.Date)); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// StreamCountdown handles GET /api/v1/events/{eventId}/countdown/stream as a
// server-sent-events stream refreshed once per second. The stream ends when
// the client disconnects or the event stops being an active countdown
// (completed or deleted mid-stream), so nothing recurs past the view's
// lifetime.
func (h *EventHandler) StreamCountdown(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.StreamCountdown()"
	log := h.log.With(slog.String("op", op))

	store, ok := h.store(log, w)
	if !ok {
		return
	}

	eventID, ok := h.eventID(log, w, r)
	if !ok {
		return
	}

	event, found := store.Find(eventID)
	if !found {
		h.respondError(log, fmt.Errorf("event not found: %s", eventID), w, http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.respondError(log, fmt.Errorf("streaming unsupported"), w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for range h.calc.TickEvery(r.Context(), event.Date, h.tickPeriod) {
		// Re-check the store on every tick: the event may have been
		// completed or deleted since the stream started.
		current, live := store.Find(eventID)
		if !live || current.Status != domain.EventStatusActive {
			log.Debug("event no longer active, ending stream",
				slog.String("eventID", eventID.String()),
			)
			return
		}

		payload, err := json.Marshal(dto.MapCountdown(h.calc, current.Date))
		if err != nil {
			log.Error("failed to encode countdown snapshot", sl.Err(err))
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

func (h *EventHandler) validateCreate(req dto.CreateEventRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(req.Title) == "" {
		fieldErrors["title"] = "Título é obrigatório"
	}

	switch {
	case req.Date == "":
		fieldErrors["date"] = "Data é obrigatória"
	case !h.calc.IsValidDate(req.Date):
		fieldErrors["date"] = "Data inválida"
	case !h.calc.IsFutureDate(req.Date):
		fieldErrors["date"] = "A data deve ser futura"
	}

	return fieldErrors
}

// store resolves the active session's event store, answering 401 when no
// session is open.
func (h *EventHandler) store(log *slog.Logger, w http.ResponseWriter) (*events.Store, bool) {
	store, ok := h.sessions.Current()
	if !ok {
		h.respondError(log, fmt.Errorf("no active session"), w, http.StatusUnauthorized)
		return nil, false
	}
	return store, true
}

func (h *EventHandler) eventID(log *slog.Logger, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "eventId")
	if raw == "" {
		h.respondError(log, fmt.Errorf("empty eventId"), w, http.StatusBadRequest)
		return uuid.Nil, false
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		h.respondError(log, fmt.Errorf("invalid eventId: %w", err), w, http.StatusBadRequest)
		return uuid.Nil, false
	}

	return parsed, true
}

func (h *EventHandler) findEvent(log *slog.Logger, w http.ResponseWriter, r *http.Request) (domain.Event, bool) {
	store, ok := h.store(log, w)
	if !ok {
		return domain.Event{}, false
	}

	eventID, ok := h.eventID(log, w, r)
	if !ok {
		return domain.Event{}, false
	}

	event, found := store.Find(eventID)
	if !found {
		h.respondError(log, fmt.Errorf("event not found: %s", eventID), w, http.StatusNotFound)
		return domain.Event{}, false
	}

	return event, true
}

func (h *EventHandler) respondOK(log *slog.Logger, w http.ResponseWriter) {
	if err := utils.Json(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *EventHandler) respondError(log *slog.Logger, err error, w http.ResponseWriter, status int) {
	log.Error("handler error", sl.Err(err))
	if httpErr := utils.Err(w, status, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}
