package layout

import (
	"github.com/matzehuels/folio/pkg/errors"
)

// Orientation selects the scroll axis of the document.
type Orientation string

const (
	// Vertical scrolls top to bottom; pages stack below one another.
	Vertical Orientation = "vertical"
	// Horizontal scrolls left to right; pages line up side by side.
	Horizontal Orientation = "horizontal"
)

// ParseOrientation converts a string to an [Orientation].
// The empty string defaults to [Vertical].
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case Vertical, "":
		return Vertical, nil
	case Horizontal:
		return Horizontal, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig, "unknown orientation %q (use %q or %q)", s, Vertical, Horizontal)
	}
}

// PagePadding is the leading padding applied inside each group's region:
// above the group in vertical orientation and to its left in horizontal.
type PagePadding struct {
	Top  float64 `json:"top,omitempty" toml:"top"`
	Left float64 `json:"left,omitempty" toml:"left"`
}

// DocPadding is the padding around the whole document canvas.
type DocPadding struct {
	Top    float64 `json:"top,omitempty" toml:"top"`
	Right  float64 `json:"right,omitempty" toml:"right"`
	Bottom float64 `json:"bottom,omitempty" toml:"bottom"`
	Left   float64 `json:"left,omitempty" toml:"left"`
}

// Config holds every input to a layout computation besides the manifest
// itself. The zero value is a valid configuration: vertical single-page
// layout at zoom level 0 with no padding.
type Config struct {
	// Orientation is the scroll axis. Empty means [Vertical].
	Orientation Orientation `json:"orientation,omitempty" toml:"orientation"`

	// Zoom indexes into each page's dimension table.
	Zoom int `json:"zoom" toml:"zoom"`

	// Spreads enables book mode: pages are paired into facing spreads.
	Spreads bool `json:"spreads,omitempty" toml:"spreads"`

	// PagePadding is applied before each group along both axes.
	PagePadding PagePadding `json:"page_padding,omitempty" toml:"page_padding"`

	// DocPadding frames the finished canvas.
	DocPadding DocPadding `json:"doc_padding,omitempty" toml:"doc_padding"`
}

// Validate checks the configuration for problems that would make a layout
// computation meaningless: an unknown orientation, a negative zoom level,
// or negative padding.
func (c Config) Validate() error {
	if _, err := ParseOrientation(string(c.Orientation)); err != nil {
		return err
	}
	if c.Zoom < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "zoom level cannot be negative: %d", c.Zoom)
	}
	if c.PagePadding.Top < 0 || c.PagePadding.Left < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "page padding cannot be negative")
	}
	if c.DocPadding.Top < 0 || c.DocPadding.Right < 0 || c.DocPadding.Bottom < 0 || c.DocPadding.Left < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "document padding cannot be negative")
	}
	return nil
}

// vertical reports whether the scroll axis is vertical. The empty
// orientation counts as vertical, matching [ParseOrientation].
func (c Config) vertical() bool {
	return c.Orientation != Horizontal
}
