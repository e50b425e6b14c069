package cli

import (
	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// GetCmd shows one stored credential, secret included.
type GetCmd struct {
	Service string `arg:"" help:"Service name to look up" predictor:"service"`
}

// Run executes the get command.
func (cmd *GetCmd) Run(fp *FormatterProvider, fs *storage.FileStore) error {
	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}

	entry := store.Find(cmd.Service)
	if entry == nil {
		return output.NotFound(cmd.Service)
	}

	record := output.Record{
		{Key: "service", Value: entry.Service},
		{Key: "account", Value: entry.Account},
		{Key: "secret", Value: entry.Secret},
		{Key: "created", Value: formatTimestamp(entry.CreatedAt)},
		{Key: "updated", Value: formatTimestamp(entry.UpdatedAt)},
	}
	return fp.Formatter.Print(record)
}
