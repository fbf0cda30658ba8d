package manifest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/folio/pkg/errors"
)

const testManifest = `{"pages": [{"dims": [{"width": 100, "height": 200}]}]}`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q, want application/json", r.Header.Get("Accept"))
		}
		w.Write([]byte(testManifest))
	}))
	defer srv.Close()

	m, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if m.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", m.PageCount())
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(testManifest))
	}))
	defer srv.Close()

	m, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if m == nil || calls.Load() != 2 {
		t.Errorf("calls = %d, want 2 (one retry)", calls.Load())
	}
}

func TestFetchNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	if !errors.Is(err, errors.ErrCodeManifestNotFound) {
		t.Errorf("error = %v, want code %q", err, errors.ErrCodeManifestNotFound)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (404 is not retried)", calls.Load())
	}
}

func TestFetchInvalidURL(t *testing.T) {
	if _, err := Fetch(context.Background(), "ftp://example.com/m.json"); err == nil {
		t.Error("non-HTTP scheme should be rejected")
	}
}

func TestFetchInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pages": [{"dims": []}]}`))
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("error = %v, want code %q", err, errors.ErrCodeInvalidManifest)
	}
}
