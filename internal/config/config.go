package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Config holds crab's own settings, separate from the credential database.
// The file is hand-editable JSON5; crab writes plain JSON back (valid JSON5).
type Config struct {
	// DatabasePath overrides the default ~/.crab/credentials.json location.
	DatabasePath string `json:"database_path,omitempty"`
	// DefaultOutput is the output mode used when -o is not given.
	DefaultOutput string `json:"default_output,omitempty"`
	// KeychainService is the OS keyring service name for the mirror.
	KeychainService string `json:"keychain_service,omitempty"`
}

// Load reads the config from the XDG path. A missing file yields defaults.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config with owner-only permissions.
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Keys lists the valid config keys in display order.
func Keys() []string {
	return []string{"database_path", "default_output", "keychain_service"}
}

// Get retrieves a config value by key name.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "database_path":
		return c.DatabasePath, nil
	case "default_output":
		return c.DefaultOutput, nil
	case "keychain_service":
		return c.KeychainService, nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

// Set stores a config value by key name and saves.
func (c *Config) Set(key, value string) error {
	switch key {
	case "database_path":
		c.DatabasePath = value
	case "default_output":
		switch value {
		case "json", "plain", "rich", "auto":
		default:
			return fmt.Errorf("invalid output mode: %s (valid: json, plain, rich, auto)", value)
		}
		c.DefaultOutput = value
	case "keychain_service":
		c.KeychainService = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return c.Save()
}

// Unset resets a config value to its default and saves.
func (c *Config) Unset(key string) error {
	switch key {
	case "database_path":
		c.DatabasePath = ""
	case "default_output":
		c.DefaultOutput = ""
	case "keychain_service":
		c.KeychainService = ""
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return c.Save()
}
