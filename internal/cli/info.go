package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// InfoCmd shows database metadata: version, entry count, file size,
// last-modified time, and location.
type InfoCmd struct{}

// Run executes the info command.
func (cmd *InfoCmd) Run(fp *FormatterProvider, fs *storage.FileStore) error {
	if !fs.Exists() {
		return output.FromStorage(storage.ErrDatabaseNotFound)
	}

	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}

	record := output.Record{
		{Key: "version", Value: store.FormatVersion()},
		{Key: "entries", Value: store.Len()},
	}

	// Metadata is informational; a failure here is reported, not fatal.
	if info, err := fs.Metadata(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read file info: %v\n", err)
	} else {
		record = append(record,
			output.Field{Key: "size", Value: formatBytes(info.Size)},
			output.Field{Key: "modified", Value: info.ModTime.Local().Format("2006-01-02 15:04:05")},
		)
	}

	record = append(record, output.Field{Key: "location", Value: fs.Path()})
	return fp.Formatter.Print(record)
}
