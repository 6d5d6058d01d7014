// Package jump implements Rikka Jump, an endless vertical jumper.
// The character bounces automatically off every platform it lands on; the
// player steers left and right, collects coins, and climbs until falling
// below the screen.
package jump

import (
	"math/rand"

	"github.com/vovakirdan/rikkajump/internal/config"
	"github.com/vovakirdan/rikkajump/internal/core"
	"github.com/vovakirdan/rikkajump/internal/registry"
)

// Game implements the jumper: world generation, camera, scoring and the
// title / play / game-over state machine.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.JumpConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	gen        *Generator
	texture    *Texture
	sprites    *SpriteSheet

	player Player
	world  World
	state  GameStateType

	score       int
	worldOffset float64 // Total upward scroll this run
	heightScore float64
	frame       uint64 // Ticks since Reset, drives title color cycling
	runTicks    int    // Ticks since the current run started
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Rikka Jump game instance.
func New() *Game {
	return &Game{sprites: defaultSprites}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rikka Jump"
}

// Reset loads the tuning, regenerates the wall texture and returns to the
// title screen with a fresh layout.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadJump(configPath)
	if err != nil {
		cfg = config.DefaultJumpConfig()
	}
	config.ApplyJumpPreset(&cfg, difficultyPreset)
	g.Configure(cfg)
}

// Configure installs an explicit configuration and resets to the title
// screen. Reset calls it after loading config from disk.
func (g *Game) Configure(cfg config.JumpConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	g.texture = NewTexture(g.rng, cfg.Background)
	g.gen = NewGenerator(g.rng, &g.cfg)
	g.player = NewPlayer(&g.cfg)
	g.frame = 0

	g.initRun()
	g.state = StateTitle
}

// initRun rebuilds the world and zeroes every per-run counter.
func (g *Game) initRun() {
	g.gen.SetMaxTiles(g.cfg.Platforms.MaxTiles)
	g.gen.Populate(&g.world)
	g.player.Reset()
	if low, ok := g.world.Lowest(); ok {
		g.player.PlaceOn(low)
	}

	g.score = 0
	g.heightScore = 0
	g.worldOffset = 0
	g.runTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	var result core.StepResult
	switch g.state {
	case StateTitle, StateGameOver:
		if in.Has(core.ActionConfirm) {
			g.initRun()
			g.state = StatePlay
			result.Started = true
		}
	case StatePlay:
		result.Ended = g.stepPlay(in)
	}

	result.State = g.State()
	return result
}

// stepPlay runs one gameplay tick and reports whether the run just ended.
func (g *Game) stepPlay(in core.InputFrame) bool {
	g.runTicks++

	g.player.Update(in, g.world.Platforms)
	g.adjustCamera()

	speed := g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, int(g.heightScore), g.runTicks)
	g.worldOffset += speed
	g.heightScore = g.worldOffset / g.cfg.Scoring.HeightDivisor

	g.world.Shift(speed)
	g.world.Cull(float64(g.cfg.World.Height + g.cfg.World.CullMargin))

	g.gen.SetMaxTiles(g.difficulty.MaxTiles(g.cfg.Platforms.MaxTiles, g.cfg.Platforms.MinTiles,
		int(g.heightScore), g.runTicks))
	g.gen.Extend(&g.world)

	cx, cy := g.player.Center()
	g.score += g.world.Collect(cx, cy, g.cfg.Coins.Radius, g.cfg.Scoring)

	if !g.player.Alive {
		g.state = StateGameOver
		return true
	}
	return false
}

// adjustCamera keeps the player at or below the target height by shifting
// the whole world down and banking the shift as climbed distance.
func (g *Game) adjustCamera() {
	target := float64(g.cfg.World.Height) * g.cfg.Physics.CameraTarget
	if g.player.Y >= target {
		return
	}

	dy := target - g.player.Y
	g.player.Y += dy
	g.world.Shift(dy)
	g.worldOffset += dy
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Height:   int(g.heightScore),
		Playing:  g.state == StatePlay,
		GameOver: g.state == StateGameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("jump", func() registry.Game {
		return New()
	})
}
