// Package cache provides pluggable byte caches for computed layouts and
// fetched manifests, plus the key scheme that addresses them.
//
// Three backends implement the same [Cache] interface: [FileCache] for CLI
// usage, [RedisCache] for the HTTP service, and [NullCache] to disable
// caching. Keys are built by a [Keyer] so every component derives them the
// same way.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys with optional
// expiration. A miss is not an error: Get reports it through the boolean.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
