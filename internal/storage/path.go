package storage

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DatabaseDirName is the per-product directory under the user's home.
const DatabaseDirName = ".crab"

// DatabaseFileName is the primary database file name. Backups live next to
// it as credentials_<unixtime>.json.bak.
const DatabaseFileName = "credentials.json"

// DefaultPath resolves ~/.crab/credentials.json. No environment fallback
// beyond the OS home lookup; an undiscoverable home is ErrNoHome.
func DefaultPath() (string, error) {
	if xdg.Home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(xdg.Home, DatabaseDirName, DatabaseFileName), nil
}
