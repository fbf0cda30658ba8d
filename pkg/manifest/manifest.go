// Package manifest defines the document manifest consumed by the layout
// engine: an ordered list of pages, each carrying its pixel dimensions at
// every supported zoom level.
//
// # Architecture
//
// A [Manifest] is a plain data structure. Pages are identified by their
// 0-based position in the page list; that index is stable, unique, and
// monotonically increasing, and it is the identifier all layout output
// refers back to. The manifest itself never changes once loaded — the
// layout engine treats it as read-only input.
//
// Manifests are serialized as JSON (see [ReadJSON] and [WriteJSON]) and can
// be fetched from HTTP endpoints with [Fetch]. BSON tags support the Mongo
// manifest store used by the HTTP service.
package manifest

import (
	"github.com/matzehuels/folio/pkg/errors"
)

// Size is a pixel dimension pair at a single zoom level.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Page describes a single page of the document.
//
// Dims is indexed by zoom level: Dims[0] is the page's size at the smallest
// zoom, Dims[len-1] at the largest. Paged marks the page as belonging to the
// discrete page sequence; it only matters in book mode, where non-paged
// pages (covers, inserts) are skipped when forming spreads.
type Page struct {
	Dims  []Size `json:"dims" bson:"dims"`
	Paged bool   `json:"paged,omitempty" bson:"paged,omitempty"`
}

// Manifest is the ordered description of a document's pages.
type Manifest struct {
	// ID identifies a stored manifest. Empty for ad-hoc manifests.
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	// Title is an optional display title.
	Title string `json:"title,omitempty" bson:"title,omitempty"`

	// Paged declares that the document uses discrete paged semantics.
	// When true, pages not marked Paged are skipped in book mode.
	Paged bool `json:"paged,omitempty" bson:"paged,omitempty"`

	// Pages is the ordered page sequence. Page indices used throughout
	// the layout engine refer to positions in this slice.
	Pages []Page `json:"pages" bson:"pages"`
}

// PageCount returns the number of pages in the manifest.
func (m *Manifest) PageCount() int {
	return len(m.Pages)
}

// ZoomLevels returns the number of zoom levels available on every page,
// i.e. the smallest dimension-table length across all pages. An empty
// manifest has zero zoom levels.
func (m *Manifest) ZoomLevels() int {
	if len(m.Pages) == 0 {
		return 0
	}
	levels := len(m.Pages[0].Dims)
	for _, p := range m.Pages[1:] {
		if len(p.Dims) < levels {
			levels = len(p.Dims)
		}
	}
	return levels
}

// Validate checks the manifest for structural problems.
//
// An empty page list is valid (it lays out to a padding-only canvas), but
// every page present must carry at least one zoom level, and no dimension
// may be negative.
func (m *Manifest) Validate() error {
	for i, p := range m.Pages {
		if len(p.Dims) == 0 {
			return errors.New(errors.ErrCodeInvalidManifest, "page %d has no zoom levels", i)
		}
		for z, d := range p.Dims {
			if d.Width < 0 || d.Height < 0 {
				return errors.New(errors.ErrCodeInvalidManifest,
					"page %d has negative dimensions at zoom %d (%gx%g)", i, z, d.Width, d.Height)
			}
		}
	}
	return nil
}
