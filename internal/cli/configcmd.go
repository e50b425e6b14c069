package cli

import (
	"fmt"
	"os"

	"github.com/crab-sh/crab/internal/config"
	"github.com/crab-sh/crab/internal/output"
)

// ConfigGetCmd implements config get.
type ConfigGetCmd struct {
	Key string `arg:"" help:"Config key to get (e.g., database_path)"`
}

func (cmd *ConfigGetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	value, err := cfg.Get(cmd.Key)
	if err != nil {
		return output.NewCLIError(output.ExitUsage, err.Error())
	}
	fmt.Println(value)
	return nil
}

// ConfigSetCmd implements config set.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Config key to set"`
	Value string `arg:"" help:"Value to set"`
}

func (cmd *ConfigSetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if err := cfg.Set(cmd.Key, cmd.Value); err != nil {
		return output.NewCLIError(output.ExitUsage, err.Error())
	}
	fmt.Fprintf(os.Stderr, "Set %s = %s\n", cmd.Key, cmd.Value)
	return nil
}

// ConfigUnsetCmd implements config unset.
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Config key to remove"`
}

func (cmd *ConfigUnsetCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	if err := cfg.Unset(cmd.Key); err != nil {
		return output.NewCLIError(output.ExitUsage, err.Error())
	}
	fmt.Fprintf(os.Stderr, "Unset %s\n", cmd.Key)
	return nil
}

// ConfigListCmd implements config list.
type ConfigListCmd struct{}

func (cmd *ConfigListCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	rows := make([]output.Record, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return output.NewCLIError(output.ExitConfig, err.Error())
		}
		rows = append(rows, output.Record{
			{Key: "key", Value: key},
			{Key: "value", Value: value},
		})
	}

	columns := []output.Column{
		{Name: "Key", Key: "key"},
		{Name: "Value", Key: "value"},
	}
	return fp.Formatter.PrintList(columns, rows)
}

// ConfigPathCmd implements config path.
type ConfigPathCmd struct{}

func (cmd *ConfigPathCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	path := config.Path()
	fmt.Println(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "(file does not exist yet - will be created on first write)")
	} else {
		fmt.Fprintln(os.Stderr, "(file exists)")
	}
	return nil
}
