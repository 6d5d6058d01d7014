// rikkajump is an endless vertical jumper for the terminal.
//
// Usage:
//
//	rikkajump play [game]     - Play (default: jump)
//	rikkajump list            - List available games
//	rikkajump scores [game]   - Show high scores
//	rikkajump board [game]    - Browse high scores interactively
//	rikkajump serve           - Start SSH server for remote play
//	rikkajump config          - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.rikkajump/scores.db)
//	--log-file <path>   - Write debug logs to a file
//
// Unset flags fall back to RIKKAJUMP_* environment variables, which may come
// from a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/rikkajump/internal/games/jump"
	"github.com/vovakirdan/rikkajump/internal/registry"
	"github.com/vovakirdan/rikkajump/internal/storage"
)

const defaultGame = "jump"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rikkajump",
	Short: "Rikka Jump - an endless vertical jumper in your terminal",
	Long: `Rikka Jump is an endless vertical jumper. The character bounces on
its own; steer left and right, collect coins and climb as high as you can
before falling off the bottom of the screen.

Examples:
  rikkajump play
  rikkajump play --difficulty hard
  rikkajump scores
  rikkajump serve --ssh :2222

Flags can also be set through RIKKAJUMP_* variables (RIKKAJUMP_DB,
RIKKAJUMP_SSH, ...) or a .env file in the working directory.`,
	SilenceUsage:      true,
	PersistentPreRunE: envPreRun,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) (string, error) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q (run 'rikkajump list' to see available games)", gameID)
	}
	return gameID, nil
}

// openLogger returns a debug logger writing to --log-file, or a discarding
// logger when the flag is unset. The full-screen UI owns stdout and stderr.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "rikkajump",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database, degrading to no persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		return nil
	}
	return store
}
