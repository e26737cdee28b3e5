package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestService() *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, "test-secret", time.Hour)
}

func TestLoginYieldsDemoUser(t *testing.T) {
	svc := newTestService()

	user, token, err := svc.Login(context.Background())
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if user.UID != "demo-user-id" {
		t.Errorf("UID = %q, want %q", user.UID, "demo-user-id")
	}
	if user.Email != "demo@exemplo.com" {
		t.Errorf("Email = %q, want %q", user.Email, "demo@exemplo.com")
	}
	if user.DisplayName != "Usuário Demo" {
		t.Errorf("DisplayName = %q, want %q", user.DisplayName, "Usuário Demo")
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if current := svc.Current(); current == nil || current.UID != user.UID {
		t.Error("Current() does not reflect the logged-in user")
	}
}

func TestValidateToken(t *testing.T) {
	svc := newTestService()

	_, token, err := svc.Login(context.Background())
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	uid, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if uid != "demo-user-id" {
		t.Errorf("uid = %q, want %q", uid, "demo-user-id")
	}

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}

	other := New(slog.New(slog.NewTextHandler(io.Discard, nil)), "other-secret", time.Hour)
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestSubscribersFollowIdentityChanges(t *testing.T) {
	svc := newTestService()

	var changes []*User
	svc.OnChange(func(u *User) {
		changes = append(changes, u)
	})

	ctx := context.Background()
	if _, _, err := svc.Login(ctx); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	svc.Logout(ctx)

	if len(changes) != 2 {
		t.Fatalf("got %d notifications, want 2", len(changes))
	}
	if changes[0] == nil || changes[0].UID != "demo-user-id" {
		t.Error("login notification missing the user")
	}
	if changes[1] != nil {
		t.Error("logout notification should carry nil")
	}
	if svc.Current() != nil {
		t.Error("Current() not cleared after logout")
	}
}
