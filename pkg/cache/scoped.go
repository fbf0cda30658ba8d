package cache

import "github.com/matzehuels/folio/pkg/layout"

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or
// tenants sharing one Redis instance do not collide.
//
// Example usage:
//
//	// Keys private to one API deployment
//	apiKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ManifestKey generates a prefixed key for manifest caching.
func (k *ScopedKeyer) ManifestKey(source string) string {
	return k.prefix + k.inner.ManifestKey(source)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(manifestHash string, cfg layout.Config) string {
	return k.prefix + k.inner.LayoutKey(manifestHash, cfg)
}
