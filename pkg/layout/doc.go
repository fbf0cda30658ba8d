// Package layout computes the geometry of a paginated document: given a
// manifest of page dimensions and a viewing configuration, it produces the
// absolute position of every page group and the total canvas size.
//
// # Architecture
//
// Layout runs as a pipeline of pure passes over the manifest:
//
//  1. Resolve — [PageDims] looks up each page's pixel size at the requested
//     zoom level.
//  2. Group — [Groups] partitions pages into layout units: one page per
//     group in single-page mode, facing pairs in book mode.
//  3. Measure — [SecondaryExtent] finds the document's extent along the
//     axis perpendicular to scrolling.
//  4. Compose — [Compute] walks the groups along the scroll axis, centers
//     each one on the secondary axis, and accumulates the canvas size.
//
// Every pass is deterministic and side-effect free: the same manifest and
// configuration always produce the same [Document]. Nothing here touches
// rendering, scrolling, or input handling; callers position real content
// using the regions this package reports.
//
// # Usage
//
//	doc, err := layout.Compute(m, layout.Config{
//		Orientation: layout.Vertical,
//		Spreads:     true,
//		DocPadding:  layout.DocPadding{Top: 20, Bottom: 20, Left: 20, Right: 20},
//	})
//
// The resulting [Document] carries one [PageGroup] per layout unit, each
// with the region it occupies on the canvas and the page offsets inside it.
package layout
