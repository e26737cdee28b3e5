package events

import (
	"context"
	"testing"
	"time"

	"countdown/internal/storage/memstore"
)

func TestManagerSessionLifecycle(t *testing.T) {
	kv := memstore.New()
	clock := &testClock{t: time.Now()}
	manager := NewManager(discardLogger(), kv, clock)

	if _, ok := manager.Current(); ok {
		t.Fatal("expected no store before login")
	}

	ctx := context.Background()
	opened := manager.Open(ctx, "demo-user-id")
	opened.Add(ctx, AddEventInput{Title: "Evento", Date: "2025-11-11"})

	current, ok := manager.Current()
	if !ok || current.UserID() != "demo-user-id" {
		t.Fatal("current store not the opened session")
	}

	manager.Close()
	if _, ok := manager.Current(); ok {
		t.Fatal("store still present after logout")
	}

	// Logout only drops the in-memory store; persisted data survives.
	reopened := manager.Open(ctx, "demo-user-id")
	if got := reopened.List(); len(got) != 1 {
		t.Errorf("reopened session has %d events, want 1", len(got))
	}
}
