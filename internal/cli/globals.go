package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/crab-sh/crab/internal/config"
	"github.com/crab-sh/crab/internal/output"
	"github.com/crab-sh/crab/internal/storage"
)

// Globals holds flags available to all commands.
type Globals struct {
	Output  string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"CRAB_OUTPUT"`
	DB      string `help:"Database file path override" env:"CRAB_DB"`
	NoInput bool   `help:"Disable interactive prompts (fail instead)" env:"CRAB_NO_INPUT"`
	Force   bool   `help:"Skip confirmation prompts for destructive operations" env:"CRAB_FORCE"`
}

// AfterApply runs once flag, env, and default values have been applied to
// the grammar, so the --db and -o overrides are visible here (they are
// still zero in BeforeApply). It loads crab's config, resolves the
// database path (--db flag > config > ~/.crab/credentials.json), creates
// the formatter, and binds the dependencies into the kong context.
func (g *Globals) AfterApply(ctx *kong.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return output.NewCLIError(output.ExitConfig, err.Error())
	}

	path := g.DB
	if path == "" {
		path = cfg.DatabasePath
	}
	if path == "" {
		path, err = storage.DefaultPath()
		if err != nil {
			return output.FromStorage(err)
		}
	}

	fp := &FormatterProvider{
		Formatter: output.New(g.ResolvedOutput(cfg)),
	}

	ctx.Bind(cfg)
	ctx.Bind(fp)
	ctx.Bind(g)
	ctx.Bind(storage.New(path))

	return nil
}

// ResolvedOutput returns the effective output mode: the -o flag, then the
// configured default, then TTY detection (rich on a terminal, else plain).
func (g *Globals) ResolvedOutput(cfg *config.Config) string {
	if g.Output != "auto" {
		return g.Output
	}
	if cfg.DefaultOutput != "" && cfg.DefaultOutput != "auto" {
		return cfg.DefaultOutput
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}
	return "plain"
}
