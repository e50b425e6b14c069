package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
	"github.com/crab-sh/crab/internal/vault"
)

// EditCmd edits a stored credential in place. Prompts default to the
// current values; updated_at only refreshes for fields that actually
// change.
type EditCmd struct {
	Service string `arg:"" help:"Service name to edit" predictor:"service"`
}

// Run executes the edit command.
func (cmd *EditCmd) Run(fp *FormatterProvider, globals *Globals, fs *storage.FileStore) error {
	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}

	entry := store.Find(cmd.Service)
	if entry == nil {
		return output.NotFound(cmd.Service)
	}

	fmt.Fprintf(os.Stderr, "Editing credential for '%s'\n", cmd.Service)
	fmt.Fprintf(os.Stderr, "  Service: %s\n", entry.Service)
	fmt.Fprintf(os.Stderr, "  Account: %s\n", entry.Account)

	p := newPrompter(globals)

	newService, err := p.line("New service name", entry.Service)
	if err != nil {
		return err
	}
	if newService != entry.Service && store.Find(newService) != nil {
		return output.NewCLIError(output.ExitUsage,
			fmt.Sprintf("Cannot rename: service '%s' already exists", newService))
	}

	newAccount, err := p.line("New account", entry.Account)
	if err != nil {
		return err
	}

	changeSecret, err := p.confirm("Change secret?", false)
	if err != nil {
		return err
	}
	var newSecret string
	if changeSecret {
		newSecret, err = p.password("New secret")
		if err != nil {
			return err
		}
	}

	err = store.Update(cmd.Service, func(e *vault.Entry) {
		if newService != e.Service {
			e.UpdateService(newService)
		}
		if newAccount != e.Account {
			e.UpdateAccount(newAccount)
		}
		if changeSecret {
			e.UpdateSecret(newSecret)
		}
	})
	if err != nil {
		return output.FromStorage(err)
	}

	if err := fs.Save(store); err != nil {
		return output.FromStorage(err)
	}

	fmt.Fprintln(os.Stderr, "✓ Credential updated successfully")
	return nil
}
