package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/config"
	"github.com/crab-sh/crab/internal/keychain"
	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// KeychainSyncCmd copies every stored secret into the OS keyring.
// The JSON database stays authoritative; this is a one-way mirror for
// applications that read from the platform keychain.
type KeychainSyncCmd struct{}

func (cmd *KeychainSyncCmd) Run(cfg *config.Config, fp *FormatterProvider, fs *storage.FileStore) error {
	store, err := fs.Load()
	if err != nil {
		return output.FromStorage(err)
	}
	if store.Len() == 0 {
		return output.NewCLIError(output.ExitEmpty, "No credentials stored yet").
			WithHint("Run 'crab add' to create your first credential")
	}

	mirror, err := keychain.Open(cfg.KeychainService)
	if err != nil {
		return output.NewCLIError(output.ExitIO, err.Error()).
			WithHint("OS keyring may be unavailable in headless environments")
	}

	count, err := mirror.Sync(store)
	if err != nil {
		return output.NewCLIError(output.ExitIO, err.Error())
	}

	fmt.Fprintf(os.Stderr, "✓ Mirrored %d secrets into the OS keyring\n", count)
	return nil
}

// KeychainClearCmd removes every mirrored secret from the OS keyring.
type KeychainClearCmd struct{}

func (cmd *KeychainClearCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	mirror, err := keychain.Open(cfg.KeychainService)
	if err != nil {
		return output.NewCLIError(output.ExitIO, err.Error()).
			WithHint("OS keyring may be unavailable in headless environments")
	}

	count, err := mirror.Clear()
	if err != nil {
		return output.NewCLIError(output.ExitIO, err.Error())
	}

	fmt.Fprintf(os.Stderr, "✓ Removed %d secrets from the OS keyring\n", count)
	return nil
}
