package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/folio/pkg/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
orientation = "horizontal"
zoom = 2
spreads = true

[page_padding]
top = 12
left = 8

[doc_padding]
top = 24
right = 24
bottom = 24
left = 24
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	want := layout.Config{
		Orientation: layout.Horizontal,
		Zoom:        2,
		Spreads:     true,
		PagePadding: layout.PagePadding{Top: 12, Left: 8},
		DocPadding:  layout.DocPadding{Top: 24, Right: 24, Bottom: 24, Left: 24},
	}
	if cfg != want {
		t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `spreads = true`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if !cfg.Spreads || cfg.Zoom != 0 || cfg.Orientation != "" {
		t.Errorf("partial config = %+v, want only Spreads set", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", `zoom = [`},
		{"invalid orientation", `orientation = "diagonal"`},
		{"negative zoom", `zoom = -1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := loadConfig(path); err == nil {
				t.Error("loadConfig() should fail")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("loadConfig() should fail for a missing file")
		}
	})
}
