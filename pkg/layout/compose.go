package layout

import (
	"math"

	"github.com/matzehuels/folio/pkg/manifest"
)

// Region is the absolute, padding-inclusive bounds of a group on the
// canvas. Regions of consecutive groups are adjacent along the scroll
// axis: one group's trailing edge is the next group's leading edge.
type Region struct {
	Top    float64 `json:"top" bson:"top"`
	Bottom float64 `json:"bottom" bson:"bottom"`
	Left   float64 `json:"left" bson:"left"`
	Right  float64 `json:"right" bson:"right"`
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the region.
func (r Region) Height() float64 { return r.Bottom - r.Top }

// PageGroup pairs a measured group with the region it occupies. Padding is
// the leading page padding folded into the region; the group's content box
// starts at the region's leading corner plus this padding.
type PageGroup struct {
	Group   Group       `json:"group" bson:"group"`
	Region  Region      `json:"region" bson:"region"`
	Padding PagePadding `json:"padding" bson:"padding"`
}

// Document is a finished layout: the canvas size and every positioned
// group, in page order.
type Document struct {
	Width  float64     `json:"width" bson:"width"`
	Height float64     `json:"height" bson:"height"`
	Groups []PageGroup `json:"groups" bson:"groups"`
}

// Compute lays out the manifest according to cfg and returns the finished
// document. An empty manifest is not an error; it produces a canvas of
// document padding alone and no groups.
func Compute(m *manifest.Manifest, cfg Config) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	groups, err := Groups(m, cfg)
	if err != nil {
		return nil, err
	}
	return compose(groups, cfg), nil
}

// SecondaryExtent returns the document's extent along the axis
// perpendicular to scrolling: the largest group dimension on that axis
// plus the document padding on both of its sides. Every group is centered
// within this extent.
func SecondaryExtent(groups []Group, cfg Config) float64 {
	var widest float64
	for _, g := range groups {
		if cfg.vertical() {
			widest = math.Max(widest, g.Width)
		} else {
			widest = math.Max(widest, g.Height)
		}
	}
	if cfg.vertical() {
		return widest + cfg.DocPadding.Left + cfg.DocPadding.Right
	}
	return widest + cfg.DocPadding.Top + cfg.DocPadding.Bottom
}

// compose walks the groups along the scroll axis. A cursor tracks the
// trailing edge of the previous region; each group's region starts there,
// absorbs the leading page padding, and centers the group on the secondary
// axis. The final cursor plus the leading document padding is the canvas
// extent along the scroll axis.
func compose(groups []Group, cfg Config) *Document {
	extent := SecondaryExtent(groups, cfg)
	doc := &Document{Groups: make([]PageGroup, 0, len(groups))}

	var cursor float64
	for _, g := range groups {
		var region Region
		if cfg.vertical() {
			left := (extent - g.Width) / 2
			region = Region{
				Top:    cursor,
				Bottom: cursor + cfg.PagePadding.Top + g.Height,
				Left:   left,
				Right:  left + cfg.PagePadding.Left + g.Width,
			}
			cursor = region.Bottom
		} else {
			top := (extent - g.Height) / 2
			region = Region{
				Left:   cursor,
				Right:  cursor + cfg.PagePadding.Left + g.Width,
				Top:    top,
				Bottom: top + cfg.PagePadding.Top + g.Height,
			}
			cursor = region.Right
		}
		doc.Groups = append(doc.Groups, PageGroup{Group: g, Region: region, Padding: cfg.PagePadding})
	}

	if cfg.vertical() {
		doc.Width = extent
		doc.Height = cursor + cfg.DocPadding.Top
	} else {
		doc.Height = extent
		doc.Width = cursor + cfg.DocPadding.Left
	}
	return doc
}
