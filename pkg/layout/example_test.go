package layout_test

import (
	"fmt"
	"log"

	"github.com/matzehuels/folio/pkg/layout"
	"github.com/matzehuels/folio/pkg/manifest"
)

// Example lays out a three-page document as a vertically scrolled book:
// the cover stands alone, the remaining pages form one facing spread.
func Example() {
	m := &manifest.Manifest{Pages: []manifest.Page{
		{Dims: []manifest.Size{{Width: 100, Height: 200}}},
		{Dims: []manifest.Size{{Width: 100, Height: 200}}},
		{Dims: []manifest.Size{{Width: 100, Height: 200}}},
	}}

	doc, err := layout.Compute(m, layout.Config{Spreads: true})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("canvas %gx%g\n", doc.Width, doc.Height)
	for _, pg := range doc.Groups {
		fmt.Printf("group at %g,%g size %gx%g\n", pg.Region.Left, pg.Region.Top, pg.Group.Width, pg.Group.Height)
		for _, p := range pg.Group.Pages {
			fmt.Printf("  page %d at %g,%g\n", p.Index, p.Left, p.Top)
		}
	}

	// Output:
	// canvas 200x400
	// group at 0,0 size 200x200
	//   page 0 at 100,0
	// group at 0,200 size 200x200
	//   page 1 at 0,0
	//   page 2 at 100,0
}

// ExampleCompute_horizontal shows a single-page horizontal strip with
// document padding framing the canvas.
func ExampleCompute_horizontal() {
	m := &manifest.Manifest{Pages: []manifest.Page{
		{Dims: []manifest.Size{{Width: 100, Height: 200}}},
		{Dims: []manifest.Size{{Width: 100, Height: 150}}},
	}}

	doc, err := layout.Compute(m, layout.Config{
		Orientation: layout.Horizontal,
		DocPadding:  layout.DocPadding{Top: 10, Bottom: 10, Left: 10},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("canvas %gx%g\n", doc.Width, doc.Height)
	for _, pg := range doc.Groups {
		fmt.Printf("group at %g,%g\n", pg.Region.Left, pg.Region.Top)
	}

	// Output:
	// canvas 210x220
	// group at 0,10
	// group at 100,35
}
