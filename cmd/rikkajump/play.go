package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rikkajump/internal/config"
	"github.com/vovakirdan/rikkajump/internal/core"
	"github.com/vovakirdan/rikkajump/internal/games/jump"
	"github.com/vovakirdan/rikkajump/internal/platform/tui"
	"github.com/vovakirdan/rikkajump/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The character jumps by itself whenever it lands.

Controls:
  ←/A/H  →/D/L   - Steer (held for half a second, ↓/S to stop)
  Mouse          - Hold the left or right half of the screen to steer
  Space/Enter    - Start / restart
  Ctrl+S         - Save a text screenshot to ~/.rikkajump/screenshots
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Without --difficulty the config file decides; the default config keeps
speed and platform widths constant.

Examples:
  rikkajump play
  rikkajump play --difficulty hard
  rikkajump play --config ./my-jump.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	// Fail fast on a broken custom config instead of silently using defaults.
	if flagConfig != "" {
		if _, err := config.LoadJump(flagConfig); err != nil {
			return err
		}
	}
	jump.SetConfigPath(flagConfig)
	jump.SetDifficultyPreset(flagDifficulty)

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed, "config", flagConfig)
	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
