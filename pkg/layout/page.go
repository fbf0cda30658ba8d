package layout

import (
	"math"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/manifest"
)

// PageDims resolves the pixel dimensions of page index at the given zoom
// level. When round is true both dimensions are truncated to whole pixels;
// when false the manifest's fractional values pass through unchanged, which
// book-mode grouping relies on to keep seam alignment exact.
//
// Returns an error with code INVALID_ZOOM_LEVEL when the page carries no
// entry for zoom, and INVALID_PAGE when index is out of range.
func PageDims(m *manifest.Manifest, index, zoom int, round bool) (width, height float64, err error) {
	if index < 0 || index >= len(m.Pages) {
		return 0, 0, errors.New(errors.ErrCodeInvalidPage, "page index %d out of range [0,%d)", index, len(m.Pages))
	}
	dims := m.Pages[index].Dims
	if zoom < 0 || zoom >= len(dims) {
		return 0, 0, errors.New(errors.ErrCodeInvalidZoom, "page %d has no dimensions at zoom level %d", index, zoom)
	}
	d := dims[zoom]
	if round {
		return math.Floor(d.Width), math.Floor(d.Height), nil
	}
	return d.Width, d.Height, nil
}
