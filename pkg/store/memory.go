package store

import (
	"context"
	"sync"

	"github.com/matzehuels/folio/pkg/manifest"
)

// MemoryStore keeps manifests in a map guarded by a mutex. Contents are
// lost when the process exits.
type MemoryStore struct {
	mu        sync.RWMutex
	manifests map[string]*manifest.Manifest
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{manifests: make(map[string]*manifest.Manifest)}
}

// Get retrieves a manifest by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*manifest.Manifest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.manifests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

// Put stores a manifest under m.ID.
func (s *MemoryStore) Put(ctx context.Context, m *manifest.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[m.ID] = m
	return nil
}

// Delete removes a manifest.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.manifests[id]; !ok {
		return ErrNotFound
	}
	delete(s.manifests, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
