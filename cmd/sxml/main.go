// Command sxml tokenizes XML documents with the resumable tokenizer and prints or checks the result.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries the configuration shared by all commands, it is filled in before any command runs.
type app struct {
	cfg Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "sxml",
		Short:             "Resumable XML tokenizer",
		Long:              `sxml splits XML documents into a flat list of tokens that refer to byte offsets in the input`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().String("config", "", "path to a TOML config file")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")

	root.AddCommand(a.tokenizeCmd())
	root.AddCommand(a.checkCmd())
	root.AddCommand(versionCmd())
	return root
}

// setup loads the config file, applies the flags that were set explicitly, and configures color and logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if a.cfg, err = LoadConfig(path); err != nil {
		return err
	}
	if err := a.cfg.applyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	switch a.cfg.Color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}

	level, err := zerolog.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).
		Level(level).With().Timestamp().Logger()
	return nil
}
