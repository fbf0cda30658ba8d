package layout

// PageOffset places one page inside a group, relative to the group's own
// top-left corner. Index refers to the page's position in the manifest.
type PageOffset struct {
	Index int     `json:"index" bson:"index"`
	Top   float64 `json:"top" bson:"top"`
	Left  float64 `json:"left" bson:"left"`
}

// Group is a render-agnostic unit of layout: a single page, or two facing
// pages measured as one box. Width and Height cover the whole group; the
// page offsets position each page inside it.
type Group struct {
	Width  float64      `json:"width" bson:"width"`
	Height float64      `json:"height" bson:"height"`
	Pages  []PageOffset `json:"pages" bson:"pages"`
}

// NewGroup returns an empty group with the given outer dimensions.
func NewGroup(width, height float64) Group {
	return Group{Width: width, Height: height}
}

// Place returns a copy of g with page index added at (top, left). The
// receiver is left untouched, so partially built groups can be shared.
func (g Group) Place(index int, top, left float64) Group {
	pages := make([]PageOffset, len(g.Pages), len(g.Pages)+1)
	copy(pages, g.Pages)
	g.Pages = append(pages, PageOffset{Index: index, Top: top, Left: left})
	return g
}
