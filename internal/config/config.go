// Package config provides YAML-based game configuration loading and
// difficulty management for Rikka Jump.
package config

// JumpConfig contains all tuning for the jumper. Every default matches the
// values the game was originally balanced with.
type JumpConfig struct {
	World      JumpWorld        `yaml:"world"`
	Physics    JumpPhysics      `yaml:"physics"`
	Player     JumpPlayer       `yaml:"player"`
	Platforms  JumpPlatforms    `yaml:"platforms"`
	Coins      JumpCoins        `yaml:"coins"`
	Scoring    JumpScoring      `yaml:"scoring"`
	Background JumpBackground   `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumpWorld defines the logical playfield, in world pixels.
type JumpWorld struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	WallMargin int `yaml:"wall_margin"` // Platforms keep this far from both edges
	CullMargin int `yaml:"cull_margin"` // Entities below Height+CullMargin are dropped
}

// JumpPhysics defines per-tick physics parameters.
type JumpPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpVelocity     float64 `yaml:"jump_velocity"` // Negative = up
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	PlayerSpeed      float64 `yaml:"player_speed"`
	CameraTarget     float64 `yaml:"camera_target"`     // Fraction of world height
	LandingTolerance float64 `yaml:"landing_tolerance"` // Extra band below a platform's bottom
}

// JumpPlayer defines the player hitbox.
type JumpPlayer struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// JumpPlatforms defines platform shape and generator step ranges.
type JumpPlatforms struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
	MinTiles   int `yaml:"min_tiles"`
	MaxTiles   int `yaml:"max_tiles"`
	MinDY      int `yaml:"min_dy"`
	MaxDY      int `yaml:"max_dy"`
	MaxDX      int `yaml:"max_dx"`
	StartLift  int `yaml:"start_lift"` // First platform sits this far above the bottom
}

// JumpCoins defines coin spawning and pickup.
type JumpCoins struct {
	SmallChance float64 `yaml:"small_chance"` // r < SmallChance spawns a small coin
	BigChance   float64 `yaml:"big_chance"`   // SmallChance <= r < BigChance spawns an S coin
	OffsetY     int     `yaml:"offset_y"`     // Coin center height above the platform top
	Radius      float64 `yaml:"radius"`
}

// JumpScoring defines score values.
type JumpScoring struct {
	SmallCoin     int     `yaml:"small_coin"`
	BigCoin       int     `yaml:"big_coin"`
	HeightDivisor float64 `yaml:"height_divisor"`
}

// JumpBackground defines the procedural wall texture.
type JumpBackground struct {
	TextureSize   int     `yaml:"texture_size"`
	WallWidth     int     `yaml:"wall_width"`
	Parallax      float64 `yaml:"parallax"`
	SpeckleChance float64 `yaml:"speckle_chance"`
	BeigeChance   float64 `yaml:"beige_chance"`
	Grooves       int     `yaml:"grooves"`
	GrooveFill    float64 `yaml:"groove_fill"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "height", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Height/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to scroll speed at max difficulty
	TileReduction   int     `yaml:"tile_reduction"`   // Max platform tiles removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty values
// return "" which means "use the config file as-is".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
