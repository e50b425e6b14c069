package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Dir returns the XDG-compliant config directory for crab,
// typically ~/.config/crab/ on Linux.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "crab")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.json5")
}
