package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/folio/pkg/layout"
	"github.com/matzehuels/folio/pkg/manifest"
)

func testLayout(t *testing.T, cfg layout.Config) (*layout.Document, *manifest.Manifest) {
	t.Helper()
	m := &manifest.Manifest{Pages: []manifest.Page{
		{Dims: []manifest.Size{{Width: 100, Height: 200}}},
		{Dims: []manifest.Size{{Width: 150, Height: 250}}},
	}}
	doc, err := layout.Compute(m, cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return doc, m
}

func TestJSONRoundTrip(t *testing.T) {
	doc, _ := testLayout(t, layout.Config{})

	data, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	got, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if got.Width != doc.Width || got.Height != doc.Height {
		t.Errorf("canvas = %gx%g, want %gx%g", got.Width, got.Height, doc.Width, doc.Height)
	}
	if len(got.Groups) != len(doc.Groups) {
		t.Fatalf("len(Groups) = %d, want %d", len(got.Groups), len(doc.Groups))
	}
	if got.Groups[1].Region != doc.Groups[1].Region {
		t.Errorf("Groups[1].Region = %+v, want %+v", got.Groups[1].Region, doc.Groups[1].Region)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("ParseJSON should reject malformed input")
	}
}

func TestRenderSVG(t *testing.T) {
	cfg := layout.Config{DocPadding: layout.DocPadding{Top: 10, Left: 10, Right: 10}}
	doc, m := testLayout(t, cfg)

	data, err := RenderSVG(doc, m, cfg)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	svg := string(data)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output should start with an svg element")
	}
	if !strings.Contains(svg, `viewBox="0 0 170 460"`) {
		t.Errorf("viewBox should match canvas size, got: %.80s", svg)
	}

	// One region rect and one page rect per page, plus a label each.
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("rect count = %d, want 4", got)
	}
	if got := strings.Count(svg, "<text"); got != 2 {
		t.Errorf("text count = %d, want 2", got)
	}
	if !strings.Contains(svg, ">1</text>") {
		t.Error("page index 1 should appear as a label")
	}
}

func TestRenderSVGMissingZoom(t *testing.T) {
	cfg := layout.Config{}
	doc, m := testLayout(t, cfg)

	// A manifest that lost its zoom table cannot be drawn.
	m.Pages[0].Dims = nil
	if _, err := RenderSVG(doc, m, cfg); err == nil {
		t.Error("RenderSVG should fail when dims are missing")
	}
}
