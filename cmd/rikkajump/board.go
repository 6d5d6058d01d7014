package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rikkajump/internal/platform/tui"
	"github.com/vovakirdan/rikkajump/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board [game]",
	Short: "Browse high scores interactively",
	Long: `Open a scrollable high score table with run statistics.

Examples:
  rikkajump board
  rikkajump board --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, gameID, width, height)
}
