package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"countdown/internal/utils"
	"countdown/internal/utils/logger/sl"
)

// TokenValidator checks a session token and returns the user id it belongs to.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

type contextKey string

const userIDKey contextKey = "userID"

// Session rejects requests without a valid bearer token and stashes the
// resolved user id in the request context.
func Session(log *slog.Logger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				respond401(log, w, "missing bearer token")
				return
			}

			userID, err := validator.ValidateToken(token)
			if err != nil {
				log.Debug("session token rejected", sl.Err(err))
				respond401(log, w, "invalid session token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the session user id placed by Session.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

func respond401(log *slog.Logger, w http.ResponseWriter, reason string) {
	if err := utils.Json(w, http.StatusUnauthorized, map[string]string{"error": reason}); err != nil {
		log.Error("error sending http response", sl.Err(err))
	}
}
