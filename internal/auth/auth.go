// Package auth is the mocked single-provider session flow: every login
// yields the same demo user. It still issues real signed session tokens so
// the transport layer has something to validate, and it notifies subscribers
// on identity changes so the event store can follow the session.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated identity handed to the rest of the system.
type User struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	EmailVerified bool   `json:"emailVerified"`
}

// Fixed demo identity of the mocked provider.
const (
	demoUID         = "demo-user-id"
	demoEmail       = "demo@exemplo.com"
	demoDisplayName = "Usuário Demo"
)

// Service implements the demo session provider. Exactly one session exists
// at a time.
type Service struct {
	log      *slog.Logger
	secret   []byte
	tokenTTL time.Duration

	mu   sync.RWMutex
	user *User
	subs []func(*User)
}

func New(log *slog.Logger, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		log:      log,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// OnChange registers a subscriber for identity changes. Subscribers receive
// the user on login and nil on logout.
func (s *Service) OnChange(fn func(*User)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// Login starts the demo session and returns the user with a signed session
// token.
func (s *Service) Login(_ context.Context) (*User, string, error) {
	op := "auth.Service.Login()"

	user := &User{
		UID:           demoUID,
		Email:         demoEmail,
		DisplayName:   demoDisplayName,
		EmailVerified: true,
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.UID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.user = user
	subs := append([]func(*User){}, s.subs...)
	s.mu.Unlock()

	s.log.Info("user logged in",
		slog.String("op", op),
		slog.String("uid", user.UID),
	)

	for _, fn := range subs {
		fn(user)
	}

	return user, token, nil
}

// Logout ends the session. Persisted event data is untouched; only the
// in-memory identity is cleared.
func (s *Service) Logout(_ context.Context) {
	op := "auth.Service.Logout()"

	s.mu.Lock()
	s.user = nil
	subs := append([]func(*User){}, s.subs...)
	s.mu.Unlock()

	s.log.Info("user logged out", slog.String("op", op))

	for _, fn := range subs {
		fn(nil)
	}
}

// Current returns the authenticated user, or nil when logged out.
func (s *Service) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// ValidateToken checks the session token signature and expiry and returns
// the user id it was issued for.
func (s *Service) ValidateToken(token string) (string, error) {
	op := "auth.Service.ValidateToken()"

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%s: invalid token", op)
	}

	return claims.Subject, nil
}
