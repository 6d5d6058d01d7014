package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rikkajump/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default tuning YAML",
	Long: `Print the built-in configuration. Save it to
~/.rikkajump/configs/jump.yaml or ./configs/jump.yaml and edit it to change
physics, generation and scoring.

Examples:
  rikkajump config > ~/.rikkajump/configs/jump.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no configuration for game %q", gameID)
	}
	_, err = os.Stdout.Write(data)
	return err
}
