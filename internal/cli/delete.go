package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// DeleteCmd deletes the entire database file. Irreversible, so it
// confirms first and offers a backup.
type DeleteCmd struct {
	Backup bool `help:"Create a backup before deletion without asking"`
}

// Run executes the delete command.
func (cmd *DeleteCmd) Run(fp *FormatterProvider, globals *Globals, fs *storage.FileStore) error {
	if !fs.Exists() {
		return output.FromStorage(storage.ErrDatabaseNotFound)
	}

	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}

	fmt.Fprintln(os.Stderr, "You are about to delete the entire database!")
	fmt.Fprintf(os.Stderr, "Current database contains %d entries\n", store.Len())

	p := newPrompter(globals)

	if !globals.Force {
		confirmed, err := p.confirm("Are you sure you want to delete the ENTIRE database? This cannot be undone!", false)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, "Operation cancelled.")
			return nil
		}
	}

	wantBackup := cmd.Backup
	if !wantBackup && !globals.Force {
		wantBackup, err = p.confirm("Create a backup before deletion?", true)
		if err != nil {
			return err
		}
	}
	if wantBackup {
		backupPath, err := fs.Backup()
		if err != nil {
			return output.FromStorage(err)
		}
		fmt.Fprintf(os.Stderr, "✓ Database backup created: %s\n", backupPath)
	}

	if err := fs.Delete(); err != nil {
		return output.FromStorage(err)
	}

	fmt.Fprintln(os.Stderr, "✓ Database deleted successfully")
	return nil
}
