package cli

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/crab-sh/crab/internal/output"
)

// FormatterProvider wraps the formatter interface for kong binding.
type FormatterProvider struct {
	Formatter output.Formatter
}

// CLI is the root command structure.
type CLI struct {
	Globals

	Add      AddCmd      `cmd:"" help:"Store a new credential"`
	Get      GetCmd      `cmd:"" help:"Show a stored credential"`
	List     ListCmd     `cmd:"" help:"List stored services"`
	Edit     EditCmd     `cmd:"" help:"Edit a stored credential"`
	Remove   RemoveCmd   `cmd:"" help:"Remove a stored credential"`
	Info     InfoCmd     `cmd:"" help:"Show database information"`
	Backup   BackupCmd   `cmd:"" help:"Create a timestamped database backup"`
	Delete   DeleteCmd   `cmd:"" help:"Delete the entire database"`
	Config   ConfigCmd   `cmd:"" help:"Configuration commands"`
	Keychain KeychainCmd `cmd:"" help:"OS keyring mirror commands"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// ConfigCmd holds configuration subcommands.
type ConfigCmd struct {
	Get   ConfigGetCmd   `cmd:"" help:"Get a configuration value"`
	Set   ConfigSetCmd   `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd `cmd:"" help:"Remove a configuration value"`
	List  ConfigListCmd  `cmd:"" help:"List all configuration values"`
	Path  ConfigPathCmd  `cmd:"" help:"Show config file path"`
}

// KeychainCmd holds OS keyring mirror subcommands.
type KeychainCmd struct {
	Sync  KeychainSyncCmd  `cmd:"" help:"Copy all secrets into the OS keyring"`
	Clear KeychainClearCmd `cmd:"" help:"Remove all mirrored secrets from the OS keyring"`
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	version := ctx.Model.Vars()["version"]
	println("crab version " + version)
	return nil
}
