package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "gilded-rose" {
			t.Errorf("User-Agent = %q, want %q", got, "gilded-rose")
		}
		w.Write([]byte(`[{"name":"Aged Brie","sellIn":2,"quality":0}]`))
	}))
	defer srv.Close()

	data, err := NewClient(time.Second).Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Get() returned empty body")
	}
}

func TestClient_GetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(time.Second).Get(context.Background(), srv.URL)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", se.StatusCode, http.StatusNotFound)
	}
}

func TestClient_GetWithRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	policy := RetryPolicy{MaxRetries: 5, Cooldown: 0.001, Exponent: 1}
	data, err := NewClient(time.Second).GetWithRetry(context.Background(), srv.URL, policy)
	if err != nil {
		t.Fatalf("GetWithRetry() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("body = %q, want %q", data, "[]")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestClient_GetWithRetryStopsOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	policy := RetryPolicy{MaxRetries: 5, Cooldown: 0.001, Exponent: 1}
	if _, err := NewClient(time.Second).GetWithRetry(context.Background(), srv.URL, policy); err == nil {
		t.Fatal("GetWithRetry() expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}
