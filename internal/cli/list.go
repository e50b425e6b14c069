package cli

import (
	"strconv"

	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// ListCmd lists stored services in insertion order.
type ListCmd struct{}

// Run executes the list command.
func (cmd *ListCmd) Run(fp *FormatterProvider, fs *storage.FileStore) error {
	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}

	entries := store.Entries()
	if len(entries) == 0 {
		return output.NewCLIError(output.ExitEmpty, "No credentials stored yet").
			WithHint("Run 'crab add' to create your first credential")
	}

	rows := make([]output.Record, len(entries))
	for i, entry := range entries {
		rows[i] = output.Record{
			{Key: "index", Value: strconv.Itoa(i + 1)},
			{Key: "service", Value: entry.Service},
			{Key: "account", Value: entry.Account},
			{Key: "updated", Value: formatTimestamp(entry.UpdatedAt)},
		}
	}

	columns := []output.Column{
		{Name: "#", Key: "index"},
		{Name: "Service", Key: "service"},
		{Name: "Account", Key: "account", Width: 40},
		{Name: "Updated", Key: "updated"},
	}
	return fp.Formatter.PrintList(columns, rows)
}
