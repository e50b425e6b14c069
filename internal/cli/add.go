package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
	"github.com/crab-sh/crab/internal/vault"
)

// AddCmd stores a new credential, prompting for whatever was not given
// on the command line.
type AddCmd struct {
	Service string `help:"Service name" short:"s"`
	Account string `help:"Account name" short:"a"`
}

// Run executes the add command.
func (cmd *AddCmd) Run(fp *FormatterProvider, globals *Globals, fs *storage.FileStore) error {
	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}

	p := newPrompter(globals)

	service := cmd.Service
	if service == "" {
		service, err = p.line("Service name", "")
		if err != nil {
			return err
		}
	}

	if store.Find(service) != nil && !globals.Force {
		fmt.Fprintf(os.Stderr, "Service '%s' already exists!\n", service)
		overwrite, err := p.confirm("Do you want to overwrite it?", false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(os.Stderr, "Operation cancelled.")
			return nil
		}
	}

	account := cmd.Account
	if account == "" {
		account, err = p.line("Account name", "")
		if err != nil {
			return err
		}
	}

	secret, err := p.password("Secret")
	if err != nil {
		return err
	}

	// A single upsert replaces any existing entry; no check-then-act gap.
	store.Upsert(vault.NewEntry(service, account, secret))

	if err := fs.Save(store); err != nil {
		return output.FromStorage(err)
	}

	fmt.Fprintf(os.Stderr, "✓ Credential for '%s' added successfully\n", service)
	return nil
}
