// Package store persists uploaded manifests for the HTTP service.
//
// Two backends implement the same [Store] interface: [MemoryStore] for
// tests and single-process deployments, and [MongoStore] for durable
// multi-replica deployments.
package store

import (
	"context"
	"errors"

	"github.com/matzehuels/folio/pkg/manifest"
)

// ErrNotFound is returned when no manifest exists under the requested ID.
var ErrNotFound = errors.New("manifest not found")

// Store is a keyed manifest repository. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get retrieves a manifest by ID. Returns [ErrNotFound] if absent.
	Get(ctx context.Context, id string) (*manifest.Manifest, error)

	// Put stores a manifest under m.ID, replacing any previous version.
	Put(ctx context.Context, m *manifest.Manifest) error

	// Delete removes a manifest. Returns [ErrNotFound] if absent.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
