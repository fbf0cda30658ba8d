package layout

import (
	"math"

	"github.com/matzehuels/folio/pkg/manifest"
)

// Groups partitions the manifest's pages into layout groups according to
// cfg. In single-page mode every page becomes its own group with rounded
// dimensions. In book mode ([Config.Spreads]) pages are paired into facing
// spreads using fractional dimensions so the seam between the two halves
// stays exact.
func Groups(m *manifest.Manifest, cfg Config) ([]Group, error) {
	if cfg.Spreads {
		return groupSpreads(m, cfg)
	}
	return groupSingles(m, cfg.Zoom)
}

func groupSingles(m *manifest.Manifest, zoom int) ([]Group, error) {
	groups := make([]Group, 0, len(m.Pages))
	for i := range m.Pages {
		w, h, err := PageDims(m, i, zoom, true)
		if err != nil {
			return nil, err
		}
		groups = append(groups, NewGroup(w, h).Place(i, 0, 0))
	}
	return groups, nil
}

// pendingPage tracks the left half of a spread awaiting its partner.
type pendingPage struct {
	index         int
	width, height float64
}

// groupSpreads scans the page list once, holding at most one pending left
// page. In paged documents, pages not marked paged never join a spread;
// skipping one leaves the pending left page in place for the next
// candidate, so inserts between facing pages do not break the pairing.
func groupSpreads(m *manifest.Manifest, cfg Config) ([]Group, error) {
	var groups []Group
	var left *pendingPage

	for i := range m.Pages {
		if m.Paged && !m.Pages[i].Paged {
			continue
		}
		w, h, err := PageDims(m, i, cfg.Zoom, false)
		if err != nil {
			return nil, err
		}

		if i == 0 && cfg.vertical() {
			// The cover stands alone as the right half of an opened
			// book: double-width group, page flush right.
			groups = append(groups, NewGroup(2*w, h).Place(0, 0, w))
			continue
		}
		if left == nil {
			left = &pendingPage{index: i, width: w, height: h}
			continue
		}
		groups = append(groups, pairFacing(*left, pendingPage{index: i, width: w, height: h}, cfg))
		left = nil
	}

	if left != nil {
		w := left.width
		if cfg.vertical() {
			// Keep the trailing odd page left-aligned at spread width.
			w *= 2
		}
		groups = append(groups, NewGroup(w, left.height).Place(left.index, 0, 0))
	}
	return groups, nil
}

// pairFacing measures two pages as one spread. The group is as tall as its
// taller page. Vertically the seam is centered: both halves get the width
// of the wider page, the left page hugs the seam from the left and the
// right page starts at it. Horizontally the pages sit edge to edge.
func pairFacing(left, right pendingPage, cfg Config) Group {
	height := math.Max(left.height, right.height)
	if cfg.vertical() {
		half := math.Max(left.width, right.width)
		return NewGroup(2*half, height).
			Place(left.index, 0, half-left.width).
			Place(right.index, 0, half)
	}
	return NewGroup(left.width+right.width, height).
		Place(left.index, 0, 0).
		Place(right.index, 0, left.width)
}
