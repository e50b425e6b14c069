package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gofrs/flock"

	"github.com/crab-sh/crab/internal/vault"
)

// FileStore persists a vault.Store as a JSON document at a fixed path.
// The file is read and written whole; a credential set is small enough
// that streaming would buy nothing.
type FileStore struct {
	path string
}

// New creates a FileStore for the given database path. The path is
// resolved once per invocation (DefaultPath, config override, or --db
// flag) and passed in explicitly so tests can point at a temp directory.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the database path this store operates on.
func (s *FileStore) Path() string {
	return s.path
}

// Info describes the database file for informational display.
type Info struct {
	Size    int64
	ModTime time.Time
}

// document is the on-disk layout. All fields are mandatory.
type document struct {
	Entries []vault.Entry `json:"entries"`
	Version string        `json:"version"`
}

// wireEntry and wireDocument use pointer fields so a missing key is
// distinguishable from a zero value; decode fails instead of defaulting.
type wireEntry struct {
	Service   *string `json:"service"`
	Account   *string `json:"account"`
	Secret    *string `json:"secret"`
	CreatedAt *int64  `json:"created_at"`
	UpdatedAt *int64  `json:"updated_at"`
}

type wireDocument struct {
	Entries *[]wireEntry `json:"entries"`
	Version *string      `json:"version"`
}

// Exists reports whether the database file is present. Path trouble is
// answered with false rather than an error; this is the quiet query,
// the fallible operations report their own failures.
func (s *FileStore) Exists() bool {
	fi, err := os.Stat(s.path)
	return err == nil && !fi.IsDir()
}

// Load reads and parses the database. A missing file is not an error:
// it means no data yet, so an empty store comes back. A file that exists
// but does not parse is a DecodeError.
func (s *FileStore) Load() (*vault.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vault.New(), nil
		}
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &DecodeError{Path: s.path, Err: err}
	}
	if wire.Entries == nil {
		return nil, &DecodeError{Path: s.path, Err: errors.New("missing required key: entries")}
	}
	if wire.Version == nil {
		return nil, &DecodeError{Path: s.path, Err: errors.New("missing required key: version")}
	}

	entries := make([]vault.Entry, 0, len(*wire.Entries))
	for i, we := range *wire.Entries {
		entry, err := we.toEntry()
		if err != nil {
			return nil, &DecodeError{Path: s.path, Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		entries = append(entries, entry)
	}

	return vault.FromEntries(entries, *wire.Version), nil
}

func (we wireEntry) toEntry() (vault.Entry, error) {
	switch {
	case we.Service == nil:
		return vault.Entry{}, errors.New("missing required field: service")
	case we.Account == nil:
		return vault.Entry{}, errors.New("missing required field: account")
	case we.Secret == nil:
		return vault.Entry{}, errors.New("missing required field: secret")
	case we.CreatedAt == nil:
		return vault.Entry{}, errors.New("missing required field: created_at")
	case we.UpdatedAt == nil:
		return vault.Entry{}, errors.New("missing required field: updated_at")
	}
	return vault.Entry{
		Service:   *we.Service,
		Account:   *we.Account,
		Secret:    *we.Secret,
		CreatedAt: *we.CreatedAt,
		UpdatedAt: *we.UpdatedAt,
	}, nil
}

// Save serializes the store and replaces the database file atomically:
// write to a temp file in the same directory, then rename over the
// original. A crash mid-save leaves the previous database intact.
func (s *FileStore) Save(store *vault.Store) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	doc := document{
		Entries: store.Entries(),
		Version: store.FormatVersion(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize database: %w", err)
	}

	tmp, err := os.CreateTemp(dir, DatabaseFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set database permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write database: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace database: %w", err)
	}
	return nil
}

// Backup copies the database to a timestamped sibling,
// credentials_<unixtime>.json.bak, and returns the backup path.
// Old backups are never pruned. ErrDatabaseNotFound if nothing was
// ever saved.
func (s *FileStore) Backup() (string, error) {
	if !s.Exists() {
		return "", ErrDatabaseNotFound
	}

	unlock, err := s.acquireLock()
	if err != nil {
		return "", err
	}
	defer unlock()

	name := fmt.Sprintf("credentials_%d.json.bak", time.Now().Unix())
	backupPath := filepath.Join(filepath.Dir(s.path), name)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read database: %w", err)
	}
	if err := writeBackup(backupPath, data); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}
	return backupPath, nil
}

// writeBackup writes the backup file, removing whatever a failed write
// left behind so no partial backup survives.
func writeBackup(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0600); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// Delete removes the database file. Destructive and irreversible here;
// confirmation and the backup-first offer belong to the CLI layer.
func (s *FileStore) Delete() error {
	if !s.Exists() {
		return ErrDatabaseNotFound
	}

	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}
	return nil
}

// Metadata returns size and last-modified time of the database file.
func (s *FileStore) Metadata() (Info, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Info{}, ErrDatabaseNotFound
		}
		return Info{}, fmt.Errorf("failed to stat database: %w", err)
	}
	return Info{Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

var errLockHeld = errors.New("database is locked by another process")

// acquireLock takes an advisory lock on a sibling .lock file so two crab
// invocations serialize their writes. A held lock is retried with
// exponential backoff for a couple of seconds before giving up.
func (s *FileStore) acquireLock() (func(), error) {
	lock := flock.New(s.path + ".lock")

	try := func() error {
		locked, err := lock.TryLock()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to acquire database lock: %w", err))
		}
		if !locked {
			return errLockHeld
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxElapsedTime = 3 * time.Second

	if err := backoff.Retry(try, bo); err != nil {
		return nil, err
	}
	return func() { lock.Unlock() }, nil
}
