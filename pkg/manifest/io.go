package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/folio/pkg/errors"
)

// ReadJSON decodes a JSON manifest from r.
//
// The input must be a JSON object with a "pages" array:
//
//	{
//	  "paged": true,
//	  "pages": [
//	    {"dims": [{"width": 100, "height": 200}]},
//	    {"dims": [{"width": 100, "height": 200}], "paged": true}
//	  ]
//	}
//
// Each page must have a "dims" array with one entry per zoom level.
// Optional fields: "paged" (page and document level), "title", "id".
//
// ReadJSON returns an error if the JSON is malformed or the decoded
// manifest fails [Manifest.Validate]. The returned manifest is independent
// of r and can be used safely after ReadJSON returns. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// WriteJSON encodes a manifest as indented JSON and writes it to w.
// The output can be re-read with [ReadJSON] for round-trip processing.
func WriteJSON(m *Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportJSON reads a JSON manifest file at path.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	m, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ExportJSON writes a manifest to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
