package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/crab-sh/crab/internal/cli"
	"github.com/crab-sh/crab/internal/config"
	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

var (
	version = "dev"
)

func main() {
	cliInstance := &cli.CLI{}
	parser := kong.Must(cliInstance,
		kong.Name("crab"),
		kong.Description("A local credential manager for storing service secrets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	// Shell completion; service arguments complete from the database.
	kongplete.Complete(parser,
		kongplete.WithPredictor("service", complete.PredictFunc(predictServices)),
	)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Hook failures (config trouble, no home directory) surface
		// through Parse and keep their own exit codes; anything else
		// is a usage error for kong to report.
		exitIfCLIError(err)
		parser.FatalIfErrorf(err)
	}

	if err := ctx.Run(); err != nil {
		exitIfCLIError(err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(output.ExitIO)
	}
}

// exitIfCLIError prints a CLIError with its hint and exits with its
// code. Errors of any other kind are left for the caller.
func exitIfCLIError(err error) {
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) {
		return
	}
	formatter := output.New("plain")
	formatter.PrintError(cliErr)
	if cliErr.Hint != "" {
		formatter.PrintHint(cliErr.Hint)
	}
	os.Exit(cliErr.ExitCode)
}

// predictServices lists stored service names for shell completion.
// Best effort only: any failure means no suggestions.
func predictServices(complete.Args) []string {
	path := os.Getenv("CRAB_DB")
	if path == "" {
		if cfg, err := config.Load(); err == nil {
			path = cfg.DatabasePath
		}
	}
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			return nil
		}
	}

	store, err := storage.New(path).Load()
	if err != nil {
		return nil
	}
	return store.Services()
}
