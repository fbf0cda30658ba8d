package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/folio/pkg/layout"
	"github.com/matzehuels/folio/pkg/manifest"
)

// svg styling for the wireframe output.
const (
	regionStroke = "#94a3b8"
	pageFill     = "#e2e8f0"
	pageStroke   = "#334155"
	labelFill    = "#334155"
)

// RenderSVG draws a wireframe of the layout: a dashed rectangle per group
// region, a filled rectangle per page, and the page index as a label. The
// manifest and configuration are needed to recover page dimensions, which
// the layout intentionally does not carry.
func RenderSVG(doc *layout.Document, m *manifest.Manifest, cfg layout.Config) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`+"\n",
		doc.Width, doc.Height, doc.Width, doc.Height)

	for _, pg := range doc.Groups {
		fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="none" stroke="%s" stroke-dasharray="4 2"/>`+"\n",
			pg.Region.Left, pg.Region.Top, pg.Region.Width(), pg.Region.Height(), regionStroke)

		for _, p := range pg.Group.Pages {
			// Pages are sized like the grouper sized them: whole pixels
			// for single pages, fractional for spreads.
			w, h, err := layout.PageDims(m, p.Index, cfg.Zoom, !cfg.Spreads)
			if err != nil {
				return nil, err
			}
			x := pg.Region.Left + pg.Padding.Left + p.Left
			y := pg.Region.Top + pg.Padding.Top + p.Top
			fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="%s"/>`+"\n",
				x, y, w, h, pageFill, pageStroke)
			fmt.Fprintf(&b, `  <text x="%g" y="%g" font-size="%g" fill="%s" text-anchor="middle" dominant-baseline="middle">%d</text>`+"\n",
				x+w/2, y+h/2, labelSize(w, h), labelFill, p.Index)
		}
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

// labelSize scales the page-index label with the page, capped so labels
// stay readable on small thumbnails.
func labelSize(w, h float64) float64 {
	size := min(w, h) / 4
	if size < 8 {
		return 8
	}
	if size > 48 {
		return 48
	}
	return size
}
