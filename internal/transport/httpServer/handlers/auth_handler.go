package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"countdown/internal/utils"
	"countdown/internal/utils/logger/sl"
)

type AuthHandler struct {
	identity Identity
	log      *slog.Logger
}

func NewAuthHandler(log *slog.Logger, identity Identity) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		log:      log,
	}
}

// Login handles POST /api/v1/auth/login. The provider is mocked: every
// login yields the demo user plus a signed session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.AuthHandler.Login()"
	log := h.log.With(slog.String("op", op))

	user, token, err := h.identity.Login(r.Context())
	if err != nil {
		log.Error("login failed", sl.Err(err))
		if httpErr := utils.Err(w, http.StatusInternalServerError, fmt.Errorf("login failed")); httpErr != nil {
			log.Error("error sending http response", sl.Err(httpErr))
		}
		return
	}

	response := map[string]any{
		"user":  user,
		"token": token,
	}

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.AuthHandler.Logout()"
	log := h.log.With(slog.String("op", op))

	h.identity.Logout(r.Context())

	if err := utils.Json(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}
