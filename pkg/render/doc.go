// Package render serializes computed layouts for consumers: machine-readable
// JSON for viewer frontends and an SVG wireframe for visual inspection.
//
// Rendering is strictly downstream of layout: nothing here changes geometry,
// it only draws or encodes what [layout.Compute] produced.
package render
