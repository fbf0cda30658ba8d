package layout

import (
	"testing"

	"github.com/matzehuels/folio/pkg/manifest"
)

func TestComputeVertical(t *testing.T) {
	m := pagesOf([2]float64{100, 200}, [2]float64{150, 250}, [2]float64{120, 180})
	cfg := Config{
		PagePadding: PagePadding{Top: 10, Left: 10},
		DocPadding:  DocPadding{Top: 20, Right: 30, Bottom: 20, Left: 30},
	}

	doc, err := Compute(m, cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(doc.Groups) != 3 {
		t.Fatalf("len(Groups) = %d, want 3", len(doc.Groups))
	}

	// Widest group (150) plus horizontal document padding.
	if doc.Width != 210 {
		t.Errorf("Width = %g, want 210", doc.Width)
	}

	// Regions stack without gaps and the first starts at the origin.
	if doc.Groups[0].Region.Top != 0 {
		t.Errorf("first region Top = %g, want 0", doc.Groups[0].Region.Top)
	}
	for i := 1; i < len(doc.Groups); i++ {
		prev, cur := doc.Groups[i-1].Region, doc.Groups[i].Region
		if cur.Top != prev.Bottom {
			t.Errorf("region %d Top = %g, want %g (previous Bottom)", i, cur.Top, prev.Bottom)
		}
	}

	// Each region spans leading padding plus the group's height.
	for i, pg := range doc.Groups {
		want := cfg.PagePadding.Top + pg.Group.Height
		if got := pg.Region.Height(); got != want {
			t.Errorf("region %d height = %g, want %g", i, got, want)
		}
	}

	// Canvas height is the last trailing edge plus top document padding.
	last := doc.Groups[2].Region.Bottom
	if doc.Height != last+cfg.DocPadding.Top {
		t.Errorf("Height = %g, want %g", doc.Height, last+cfg.DocPadding.Top)
	}
}

func TestComputeCentersGroups(t *testing.T) {
	m := pagesOf([2]float64{100, 200}, [2]float64{150, 250})
	cfg := Config{DocPadding: DocPadding{Left: 25, Right: 25}}

	doc, err := Compute(m, cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// Centering identity: the left margin equals the right margin, so
	// twice the offset plus the group width recovers the full extent.
	for i, pg := range doc.Groups {
		if got := 2*pg.Region.Left + pg.Group.Width; got != doc.Width {
			t.Errorf("group %d: 2*Left + Width = %g, want %g", i, got, doc.Width)
		}
	}
}

func TestComputeHorizontal(t *testing.T) {
	m := pagesOf([2]float64{100, 200}, [2]float64{150, 250})
	cfg := Config{
		Orientation: Horizontal,
		PagePadding: PagePadding{Top: 5, Left: 15},
		DocPadding:  DocPadding{Top: 10, Bottom: 10, Left: 40},
	}

	doc, err := Compute(m, cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// Tallest group (250) plus vertical document padding.
	if doc.Height != 270 {
		t.Errorf("Height = %g, want 270", doc.Height)
	}

	// Regions line up left to right.
	if doc.Groups[0].Region.Left != 0 {
		t.Errorf("first region Left = %g, want 0", doc.Groups[0].Region.Left)
	}
	if got, want := doc.Groups[1].Region.Left, doc.Groups[0].Region.Right; got != want {
		t.Errorf("second region Left = %g, want %g", got, want)
	}

	// Groups are centered vertically.
	for i, pg := range doc.Groups {
		if got := 2*pg.Region.Top + pg.Group.Height; got != doc.Height {
			t.Errorf("group %d: 2*Top + Height = %g, want %g", i, got, doc.Height)
		}
	}

	// Canvas width is the last trailing edge plus left document padding.
	last := doc.Groups[1].Region.Right
	if doc.Width != last+cfg.DocPadding.Left {
		t.Errorf("Width = %g, want %g", doc.Width, last+cfg.DocPadding.Left)
	}
}

func TestComputeEmptyManifest(t *testing.T) {
	cfg := Config{DocPadding: DocPadding{Top: 20, Right: 30, Bottom: 20, Left: 30}}

	doc, err := Compute(&manifest.Manifest{}, cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(doc.Groups) != 0 {
		t.Errorf("len(Groups) = %d, want 0", len(doc.Groups))
	}
	if doc.Width != 60 || doc.Height != 20 {
		t.Errorf("canvas = %gx%g, want 60x20", doc.Width, doc.Height)
	}
}

func TestComputeInvalidConfig(t *testing.T) {
	m := pagesOf([2]float64{100, 200})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown orientation", Config{Orientation: "diagonal"}},
		{"negative zoom", Config{Zoom: -1}},
		{"negative page padding", Config{PagePadding: PagePadding{Top: -1}}},
		{"negative doc padding", Config{DocPadding: DocPadding{Right: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(m, tt.cfg); err == nil {
				t.Error("Compute() should reject invalid config")
			}
		})
	}
}

func TestSecondaryExtent(t *testing.T) {
	groups := []Group{NewGroup(100, 300), NewGroup(200, 150)}

	vertical := SecondaryExtent(groups, Config{DocPadding: DocPadding{Left: 10, Right: 20}})
	if vertical != 230 {
		t.Errorf("vertical extent = %g, want 230", vertical)
	}

	horizontal := SecondaryExtent(groups, Config{Orientation: Horizontal, DocPadding: DocPadding{Top: 10, Bottom: 20}})
	if horizontal != 330 {
		t.Errorf("horizontal extent = %g, want 330", horizontal)
	}
}
