// Package api implements the folio HTTP service: layout computation for
// ad-hoc manifests and a small manifest store with cache-backed layouts.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/store"
)

// Server holds the dependencies of the HTTP API.
type Server struct {
	store  store.Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

// NewServer creates a server backed by the given store and cache.
func NewServer(st store.Store, ca cache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:  st,
		cache:  ca,
		keyer:  cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:"),
		logger: logger,
	}
}

// Routes builds the chi router for the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleComputeLayout)
		r.Route("/manifests", func(r chi.Router) {
			r.Put("/", s.handlePutManifest)
			r.Get("/{id}", s.handleGetManifest)
			r.Delete("/{id}", s.handleDeleteManifest)
			r.Get("/{id}/layout", s.handleStoredLayout)
		})
	})

	return r
}

// logRequests logs method, path, status, and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// writeError maps an error to an HTTP status and writes the JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidZoom, errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPage:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeManifestNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
