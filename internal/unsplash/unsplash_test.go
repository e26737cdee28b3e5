package unsplash

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearchImageWithoutKeyReturnsPlaceholder(t *testing.T) {
	client := NewClient(discardLogger(), "")

	if got := client.SearchImage(context.Background(), "praia"); got != PlaceholderNoKey {
		t.Errorf("got %q, want %q", got, PlaceholderNoKey)
	}
}

func TestSearchImageReturnsFirstResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "praia" {
			t.Errorf("query = %q, want %q", got, "praia")
		}
		if got := r.URL.Query().Get("client_id"); got != "test-key" {
			t.Errorf("client_id = %q, want %q", got, "test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"urls":{"full":"https://images.example/praia.jpg"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(discardLogger(), "test-key")
	client.baseURL = srv.URL

	if got := client.SearchImage(context.Background(), "praia"); got != "https://images.example/praia.jpg" {
		t.Errorf("got %q, want first result url", got)
	}
}

func TestSearchImageNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := NewClient(discardLogger(), "test-key")
	client.baseURL = srv.URL

	if got := client.SearchImage(context.Background(), "nada"); got != PlaceholderNotFound {
		t.Errorf("got %q, want %q", got, PlaceholderNotFound)
	}
}

func TestSearchImageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(discardLogger(), "test-key")
	client.baseURL = srv.URL

	if got := client.SearchImage(context.Background(), "praia"); got != PlaceholderError {
		t.Errorf("got %q, want %q", got, PlaceholderError)
	}
}
