package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/layout"
)

// loadConfig reads a viewing configuration from a TOML file:
//
//	orientation = "vertical"
//	zoom = 1
//	spreads = true
//
//	[page_padding]
//	top = 12
//	left = 12
//
//	[doc_padding]
//	top = 24
//	right = 24
//	bottom = 24
//	left = 24
//
// Fields left out keep their zero values, so a partial file is fine.
func loadConfig(path string) (layout.Config, error) {
	var cfg layout.Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
