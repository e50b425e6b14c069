package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// RemoveCmd removes one stored credential after confirmation.
type RemoveCmd struct {
	Service string `arg:"" help:"Service name to remove" predictor:"service"`
}

// Run executes the remove command.
func (cmd *RemoveCmd) Run(fp *FormatterProvider, globals *Globals, fs *storage.FileStore) error {
	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}

	if store.Find(cmd.Service) == nil {
		return output.NotFound(cmd.Service)
	}

	if !globals.Force {
		p := newPrompter(globals)
		confirmed, err := p.confirm(fmt.Sprintf("Are you sure you want to remove '%s'?", cmd.Service), false)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(os.Stderr, "Operation cancelled.")
			return nil
		}
	}

	store.Remove(cmd.Service)
	if err := fs.Save(store); err != nil {
		return output.FromStorage(err)
	}

	fmt.Fprintf(os.Stderr, "✓ Credential for '%s' removed successfully\n", cmd.Service)
	return nil
}
