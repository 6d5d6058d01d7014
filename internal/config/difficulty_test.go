package config

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyDisabledKeepsBaseTuning(t *testing.T) {
	d := NewDifficultyManager(DefaultJumpConfig().Difficulty)

	if d.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := d.Speed(0.5, 10000, 10000); got != 0.5 {
		t.Errorf("Speed() = %v, expected base speed 0.5", got)
	}
	if got := d.MaxTiles(6, 2, 10000, 10000); got != 6 {
		t.Errorf("MaxTiles() = %d, expected 6", got)
	}
}

func TestDifficultyDisabledHoldsInitialLevel(t *testing.T) {
	cfg := DefaultJumpConfig().Difficulty
	cfg.InitialLevel = 0.4
	cfg.Scaling = ScalingConfig{SpeedMultiplier: 1.0, TileReduction: 5}
	d := NewDifficultyManager(cfg)

	for _, height := range []int{0, 250, 10000} {
		if got := d.Level(height, height); !almostEqual(got, 0.4) {
			t.Errorf("Level(%d) = %v, expected initial level 0.4", height, got)
		}
	}
	if got := d.Speed(0.5, 10000, 10000); !almostEqual(got, 0.7) {
		t.Errorf("Speed() = %v, expected 0.7", got)
	}
	if got := d.MaxTiles(6, 2, 10000, 10000); got != 4 {
		t.Errorf("MaxTiles() = %d, expected 4", got)
	}
}

func TestDifficultyHeightProgression(t *testing.T) {
	cfg := DefaultJumpConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "height", MaxAt: 100}
	cfg.Scaling = ScalingConfig{SpeedMultiplier: 1.0, TileReduction: 2}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		height   int
		level    float64
		speed    float64
		maxTiles int
	}{
		{0, 0.0, 0.5, 6},
		{50, 0.5, 0.75, 5},
		{100, 1.0, 1.0, 4},
		{1000, 1.0, 1.0, 4}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.height, 0); !almostEqual(got, tc.level) {
			t.Errorf("Level(%d) = %v, expected %v", tc.height, got, tc.level)
		}
		if got := d.Speed(0.5, tc.height, 0); !almostEqual(got, tc.speed) {
			t.Errorf("Speed(%d) = %v, expected %v", tc.height, got, tc.speed)
		}
		if got := d.MaxTiles(6, 2, tc.height, 0); got != tc.maxTiles {
			t.Errorf("MaxTiles(%d) = %d, expected %d", tc.height, got, tc.maxTiles)
		}
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DefaultJumpConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.5
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 60}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); !almostEqual(got, 0.5) {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 30); !almostEqual(got, 0.75) {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
}

func TestDifficultyMaxTilesFloor(t *testing.T) {
	cfg := DefaultJumpConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "height", MaxAt: 1}
	cfg.Scaling.TileReduction = 10
	d := NewDifficultyManager(cfg)

	if got := d.MaxTiles(6, 2, 5, 0); got != 2 {
		t.Errorf("MaxTiles() = %d, expected floor at min tiles 2", got)
	}
}

func TestDifficultyNoneProgression(t *testing.T) {
	cfg := DefaultJumpConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.3
	cfg.Progression.Type = "none"
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("progression type none should report disabled")
	}
	if got := d.Level(500, 500); !almostEqual(got, 0.3) {
		t.Errorf("Level() = %v, expected fixed initial level 0.3", got)
	}
}
