package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/folio/pkg/layout"
)

// Keyer derives cache keys so every component addresses the same entries.
type Keyer interface {
	// ManifestKey generates a key for a fetched manifest, addressed by its
	// source (a URL or a store ID).
	ManifestKey(source string) string

	// LayoutKey generates a key for a computed layout. The same manifest
	// hash with a different configuration must yield a different key.
	LayoutKey(manifestHash string, cfg layout.Config) string
}

// DefaultKeyer is the standard key scheme: prefix:sha256(components).
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ManifestKey generates a key for manifest caching.
func (k *DefaultKeyer) ManifestKey(source string) string {
	return hashKey("manifest", source)
}

// LayoutKey generates a key for layout caching. Every field of the
// configuration participates in the hash.
func (k *DefaultKeyer) LayoutKey(manifestHash string, cfg layout.Config) string {
	return hashKey("layout", manifestHash, cfg)
}

// hashKey builds a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
