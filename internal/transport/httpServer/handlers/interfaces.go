package handlers

import (
	"context"

	"countdown/internal/auth"
	"countdown/internal/events"
)

// Sessions hands out the event store of the active session.
type Sessions interface {
	Current() (*events.Store, bool)
}

// Identity is the session provider consumed by the auth handler and the
// session middleware.
type Identity interface {
	Login(ctx context.Context) (*auth.User, string, error)
	Logout(ctx context.Context)
	ValidateToken(token string) (string, error)
}

// ImageSearcher resolves a theme keyword to a background image URL.
type ImageSearcher interface {
	SearchImage(ctx context.Context, query string) string
}
