package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// BackupCmd copies the database to a timestamped sibling file.
type BackupCmd struct{}

// Run executes the backup command.
func (cmd *BackupCmd) Run(fp *FormatterProvider, fs *storage.FileStore) error {
	backupPath, err := fs.Backup()
	if err != nil {
		return output.FromStorage(err)
	}

	fmt.Fprintln(os.Stderr, "✓ Database backup created")
	fmt.Println(backupPath)
	return nil
}
