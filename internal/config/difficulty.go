package config

import "math"

// DifficultyManager calculates dynamic game parameters based on height/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on height/ticks.
// Without progression it stays at the initial level.
func (d *DifficultyManager) Level(height int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "height":
		progress = float64(height) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scroll speed for the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, height int, ticks int) float64 {
	level := d.Level(height, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// MaxTiles returns the widest platform (in tiles) allowed at the current level.
// Never drops below minTiles.
func (d *DifficultyManager) MaxTiles(baseMax, minTiles int, height int, ticks int) int {
	level := d.Level(height, ticks)
	reduction := int(level * float64(d.cfg.Scaling.TileReduction))
	result := baseMax - reduction
	if result < minTiles {
		result = minTiles
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
