package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/layout"
	"github.com/matzehuels/folio/pkg/manifest"
	"github.com/matzehuels/folio/pkg/observability"
	"github.com/matzehuels/folio/pkg/render"
	"github.com/matzehuels/folio/pkg/store"
)

// layoutRequest is the body of POST /v1/layouts.
type layoutRequest struct {
	Manifest *manifest.Manifest `json:"manifest"`
	Config   layout.Config      `json:"config"`
}

// handleComputeLayout computes a layout for an inline manifest.
func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Manifest == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "request is missing a manifest"))
		return
	}
	if err := req.Manifest.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	doc, _, err := s.computeCached(r, req.Manifest, req.Config)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// putManifestResponse is the body of a successful PUT /v1/manifests.
type putManifestResponse struct {
	ID string `json:"id"`
}

// handlePutManifest stores a manifest, minting a UUID when it has no ID.
func (s *Server) handlePutManifest(w http.ResponseWriter, r *http.Request) {
	m, err := manifest.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if err := errors.ValidateManifestID(m.ID); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Put(r.Context(), m); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, putManifestResponse{ID: m.ID})
}

// handleGetManifest returns a stored manifest.
func (s *Server) handleGetManifest(w http.ResponseWriter, r *http.Request) {
	m, err := s.loadStored(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// handleDeleteManifest removes a stored manifest.
func (s *Server) handleDeleteManifest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateManifestID(id); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			s.writeError(w, errors.New(errors.ErrCodeManifestNotFound, "manifest %s not found", id))
			return
		}
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStoredLayout computes a layout for a stored manifest from query
// parameters: zoom, spreads, orientation.
func (s *Server) handleStoredLayout(w http.ResponseWriter, r *http.Request) {
	m, err := s.loadStored(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	cfg, err := configFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc, _, err := s.computeCached(r, m, cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// loadStored fetches the manifest named by the id URL parameter.
func (s *Server) loadStored(r *http.Request) (*manifest.Manifest, error) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateManifestID(id); err != nil {
		return nil, err
	}
	m, err := s.store.Get(r.Context(), id)
	if err == store.ErrNotFound {
		return nil, errors.New(errors.ErrCodeManifestNotFound, "manifest %s not found", id)
	}
	return m, err
}

// configFromQuery builds a layout configuration from URL query parameters.
func configFromQuery(r *http.Request) (layout.Config, error) {
	var cfg layout.Config
	q := r.URL.Query()

	if v := q.Get("zoom"); v != "" {
		zoom, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "invalid zoom %q", v)
		}
		cfg.Zoom = zoom
	}
	if v := q.Get("spreads"); v != "" {
		spreads, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "invalid spreads %q", v)
		}
		cfg.Spreads = spreads
	}
	if v := q.Get("orientation"); v != "" {
		o, err := layout.ParseOrientation(v)
		if err != nil {
			return cfg, err
		}
		cfg.Orientation = o
	}
	return cfg, cfg.Validate()
}

// computeCached computes the layout, consulting the shared cache first.
func (s *Server) computeCached(r *http.Request, m *manifest.Manifest, cfg layout.Config) (*layout.Document, bool, error) {
	ctx := r.Context()

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, false, err
	}
	key := s.keyer.LayoutKey(cache.Hash(raw), cfg)

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		if doc, err := render.ParseJSON(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return doc, true, nil
		}
		_ = s.cache.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	orientation := string(cfg.Orientation)
	observability.Layout().OnLayoutStart(ctx, orientation, m.PageCount())
	start := time.Now()
	doc, err := layout.Compute(m, cfg)
	observability.Layout().OnLayoutComplete(ctx, orientation, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	if data, err := render.RenderJSON(doc); err == nil {
		_ = s.cache.Set(ctx, key, data, 0)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}
	return doc, false, nil
}
