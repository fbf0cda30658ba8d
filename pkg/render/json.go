package render

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/layout"
)

// RenderJSON encodes a layout as indented JSON. The output is the wire
// format of the HTTP service and the default CLI output.
func RenderJSON(doc *layout.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return buf.Bytes(), nil
}

// ParseJSON decodes a layout produced by [RenderJSON], used to deserialize
// cached layouts.
func ParseJSON(data []byte) (*layout.Document, error) {
	var doc layout.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode layout")
	}
	return &doc, nil
}
