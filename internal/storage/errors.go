package storage

import (
	"errors"
	"fmt"
)

// ErrNoHome is returned when the user's home directory cannot be resolved.
// Every storage operation needs the database path, so this is fatal.
var ErrNoHome = errors.New("home directory not found")

// ErrDatabaseNotFound is returned by Backup and Delete when the database
// file does not exist. Load treats absence as an empty store instead;
// "no data yet" is only an error for operations that need a file to act on.
var ErrDatabaseNotFound = errors.New("database file not found")

// DecodeError wraps a failure to parse the database file. It is never
// masked as an empty store: silently defaulting would lose existing data.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid database file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
