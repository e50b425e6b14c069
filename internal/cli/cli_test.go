package cli

import (
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crab-sh/crab/internal/storage"
)

// captureCmd records the dependencies the hook bound, so tests can
// assert what a real command would receive.
type captureCmd struct{}

var (
	capturedGlobals   *Globals
	capturedStore     *storage.FileStore
	capturedFormatter *FormatterProvider
)

func (c *captureCmd) Run(g *Globals, fs *storage.FileStore, fp *FormatterProvider) error {
	capturedGlobals = g
	capturedStore = fs
	capturedFormatter = fp
	return nil
}

type captureCLI struct {
	Globals

	Capture captureCmd `cmd:""`
}

func parseAndRun(t *testing.T, args []string) {
	t.Helper()
	capturedGlobals, capturedStore, capturedFormatter = nil, nil, nil

	parser, err := kong.New(&captureCLI{})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	require.NoError(t, ctx.Run())
	require.NotNil(t, capturedStore)
	require.NotNil(t, capturedGlobals)
	require.NotNil(t, capturedFormatter)
}

func TestDBFlagSelectsDatabasePath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "creds.json")

	parseAndRun(t, []string{"--db", dbPath, "capture"})

	assert.Equal(t, dbPath, capturedStore.Path(), "--db has highest precedence")
}

func TestDBEnvSelectsDatabasePath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "creds.json")
	t.Setenv("CRAB_DB", dbPath)

	parseAndRun(t, []string{"capture"})

	assert.Equal(t, dbPath, capturedStore.Path())
}

func TestOutputFlagReachesHook(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "creds.json")

	parseAndRun(t, []string{"--db", dbPath, "-o", "json", "capture"})
	assert.Equal(t, "json", capturedGlobals.Output)
}

func TestOutputDefaultReachesHook(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "creds.json")

	// The hook must see the applied "auto" default, not the zero value.
	parseAndRun(t, []string{"--db", dbPath, "capture"})
	assert.Equal(t, "auto", capturedGlobals.Output)
}
