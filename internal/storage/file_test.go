package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crab-sh/crab/internal/vault"
)

func testStore(t *testing.T) *FileStore {
	t.Helper()
	return New(filepath.Join(t.TempDir(), DatabaseDirName, DatabaseFileName))
}

func TestLoadMissingFileReturnsEmptyStore(t *testing.T) {
	fs := testStore(t)

	store, err := fs.Load()
	require.NoError(t, err, "absence is not failure")
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, vault.Version, store.FormatVersion())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := testStore(t)

	store := vault.New()
	require.NoError(t, store.Add(vault.NewEntry("github", "alice", "s3cr3t")))
	require.NoError(t, store.Add(vault.NewEntry("gitlab", "bob", "hunter2")))
	require.NoError(t, fs.Save(store))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, store.Entries(), loaded.Entries(), "same fields, same order")
	assert.Equal(t, store.FormatVersion(), loaded.FormatVersion())
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "credentials.json")
	fs := New(path)

	require.NoError(t, fs.Save(vault.New()))
	assert.FileExists(t, path)
}

func TestSaveWritesOwnerOnlyPermissions(t *testing.T) {
	fs := testStore(t)
	require.NoError(t, fs.Save(vault.New()))

	fi, err := os.Stat(fs.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestExists(t *testing.T) {
	fs := testStore(t)
	assert.False(t, fs.Exists())

	require.NoError(t, fs.Save(vault.New()))
	assert.True(t, fs.Exists())
}

func TestLoadCorruptFileFailsLoudly(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "this is not json{"},
		{name: "missing version", content: `{"entries": []}`},
		{name: "missing entries", content: `{"version": "1.0"}`},
		{name: "mistyped entries", content: `{"entries": 42, "version": "1.0"}`},
		{name: "entry missing secret", content: `{"entries": [{"service": "s", "account": "a", "created_at": 1, "updated_at": 1}], "version": "1.0"}`},
		{name: "entry mistyped timestamp", content: `{"entries": [{"service": "s", "account": "a", "secret": "x", "created_at": "yesterday", "updated_at": 1}], "version": "1.0"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testStore(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(fs.Path()), 0700))
			require.NoError(t, os.WriteFile(fs.Path(), []byte(tt.content), 0600))

			_, err := fs.Load()
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr, "corruption must never become an empty store")
		})
	}
}

func TestSaveReplacesExistingFile(t *testing.T) {
	fs := testStore(t)

	store := vault.New()
	require.NoError(t, store.Add(vault.NewEntry("github", "alice", "one")))
	require.NoError(t, fs.Save(store))

	store.Upsert(vault.NewEntry("github", "bob", "two"))
	require.NoError(t, fs.Save(store))

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "bob", loaded.Find("github").Account)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	fs := testStore(t)
	require.NoError(t, fs.Save(vault.New()))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(fs.Path()), "*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestBackupRequiresDatabase(t *testing.T) {
	fs := testStore(t)

	_, err := fs.Backup()
	assert.ErrorIs(t, err, ErrDatabaseNotFound)
}

func TestBackupCreatesTimestampedCopy(t *testing.T) {
	fs := testStore(t)
	store := vault.New()
	require.NoError(t, store.Add(vault.NewEntry("github", "alice", "s3cr3t")))
	require.NoError(t, fs.Save(store))

	backupPath, err := fs.Backup()
	require.NoError(t, err)
	assert.Regexp(t, `credentials_\d+\.json\.bak$`, backupPath)
	assert.Equal(t, filepath.Dir(fs.Path()), filepath.Dir(backupPath), "backup is a sibling")

	original, err := os.ReadFile(fs.Path())
	require.NoError(t, err)
	copied, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestRepeatedBackupsAccumulate(t *testing.T) {
	fs := testStore(t)
	require.NoError(t, fs.Save(vault.New()))

	// Same-second backups share a timestamp and collapse to one file;
	// the guarantee is that distinct seconds never overwrite each other.
	for i := 0; i < 3; i++ {
		_, err := fs.Backup()
		require.NoError(t, err)
	}

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(fs.Path()), "credentials_*.json.bak"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
}

func TestFailedBackupWriteLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "credentials_1.json.bak")

	err := writeBackup(path, []byte("data"))
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestDelete(t *testing.T) {
	fs := testStore(t)

	t.Run("missing database", func(t *testing.T) {
		assert.ErrorIs(t, fs.Delete(), ErrDatabaseNotFound)
	})

	t.Run("removes the file", func(t *testing.T) {
		require.NoError(t, fs.Save(vault.New()))
		require.NoError(t, fs.Delete())
		assert.False(t, fs.Exists())
	})
}

func TestMetadata(t *testing.T) {
	fs := testStore(t)

	_, err := fs.Metadata()
	assert.ErrorIs(t, err, ErrDatabaseNotFound)

	require.NoError(t, fs.Save(vault.New()))
	info, err := fs.Metadata()
	require.NoError(t, err)
	assert.Greater(t, info.Size, int64(0))
	assert.False(t, info.ModTime.IsZero())
}

func TestEndToEndRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseFileName)

	// First invocation: add and save.
	fs := New(path)
	store, err := fs.Load()
	require.NoError(t, err)
	require.NoError(t, store.Add(vault.NewEntry("github", "alice", "s3cr3t")))
	require.NoError(t, fs.Save(store))

	// Fresh FileStore stands in for a process restart.
	fs2 := New(path)
	loaded, err := fs2.Load()
	require.NoError(t, err)

	entry := loaded.Find("github")
	require.NotNil(t, entry)
	assert.Equal(t, "alice", entry.Account)
	assert.Equal(t, "s3cr3t", entry.Secret)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}
