package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	assert.Empty(t, cfg.DatabasePath)
	assert.Empty(t, cfg.DefaultOutput)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crab", "config.json5")

	cfg := &Config{
		DatabasePath:  "/tmp/creds.json",
		DefaultOutput: "plain",
	}
	require.NoError(t, cfg.saveTo(path))

	loaded, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadAcceptsJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	content := `{
  // hand-written comment
  database_path: "/tmp/creds.json",
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/creds.json", cfg.DatabasePath)
}

func TestGetSetKeys(t *testing.T) {
	cfg := &Config{DatabasePath: "/x", DefaultOutput: "json", KeychainService: "crab"}

	for _, key := range Keys() {
		t.Run(key, func(t *testing.T) {
			value, err := cfg.Get(key)
			require.NoError(t, err)
			assert.NotEmpty(t, value)
		})
	}

	_, err := cfg.Get("nope")
	assert.Error(t, err)
}

func TestSetRejectsInvalidOutputMode(t *testing.T) {
	cfg := &Config{}
	err := cfg.Set("default_output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output mode")
}
