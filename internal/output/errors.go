package output

import (
	"errors"
	"fmt"

	"github.com/crab-sh/crab/internal/storage"
	"github.com/crab-sh/crab/internal/vault"
)

// Exit codes. Every error kind gets its own code so scripts can branch on
// the outcome; cancellation sits in its own band away from data errors.
const (
	ExitOK              = 0
	ExitDatabaseMissing = 1   // backup/delete/info against a never-saved database
	ExitNotFound        = 2   // no credential for the requested service
	ExitEmpty           = 3   // list against an empty database
	ExitIO              = 4   // read/write/copy/remove failure
	ExitSerialization   = 5   // database file does not parse
	ExitPath            = 6   // home directory undiscoverable
	ExitUsage           = 7   // bad arguments / invalid flag values
	ExitConfig          = 10  // config file trouble
	ExitCancelled       = 100 // user aborted an interactive prompt
)

// CLIError is a structured error carrying the process exit code and an
// optional hint printed under the message.
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a CLIError with the given code and message.
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{ExitCode: code, Message: msg}
}

// WithHint attaches a user-facing hint and returns the same error.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// FromStorage maps storage and vault layer errors onto CLIErrors with the
// right exit codes. Unrecognized errors become IO errors with the cause
// preserved in the message.
func FromStorage(err error) *CLIError {
	var decodeErr *storage.DecodeError
	switch {
	case errors.Is(err, storage.ErrNoHome):
		return NewCLIError(ExitPath, "Home directory not found").
			WithHint("Set HOME, or point crab at a database with --db")
	case errors.Is(err, storage.ErrDatabaseNotFound):
		return NewCLIError(ExitDatabaseMissing, "Database file not found").
			WithHint("Run 'crab add' to create your first credential")
	case errors.As(err, &decodeErr):
		return NewCLIError(ExitSerialization, fmt.Sprintf("Data deserialization failed: %v", decodeErr.Err)).
			WithHint("The database file is corrupt; restore a credentials_*.json.bak backup")
	case errors.Is(err, vault.ErrNotFound):
		return NewCLIError(ExitNotFound, err.Error())
	default:
		return NewCLIError(ExitIO, fmt.Sprintf("File operation failed: %v", err))
	}
}

// NotFound builds the error for a missing service with the standard hint.
func NotFound(service string) *CLIError {
	return NewCLIError(ExitNotFound, fmt.Sprintf("No credential found for '%s'", service)).
		WithHint(fmt.Sprintf("Try 'crab list' to see available services or 'crab add --service %s' to create it", service))
}

// Cancelled is the error for an aborted interactive prompt.
func Cancelled() *CLIError {
	return NewCLIError(ExitCancelled, "Operation cancelled by user")
}
