package config

import (
	_ "embed"
)

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

// DefaultJumpConfig returns the default Rikka Jump configuration.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		World: JumpWorld{
			Width:      360,
			Height:     240,
			WallMargin: 40,
			CullMargin: 20,
		},
		Physics: JumpPhysics{
			Gravity:          0.2,
			JumpVelocity:     -4.0,
			ScrollSpeed:      0.5,
			PlayerSpeed:      2.0,
			CameraTarget:     0.55,
			LandingTolerance: 5,
		},
		Player: JumpPlayer{
			Width:  16,
			Height: 16,
		},
		Platforms: JumpPlatforms{
			TileWidth:  8,
			TileHeight: 8,
			MinTiles:   2,
			MaxTiles:   6,
			MinDY:      18,
			MaxDY:      50,
			MaxDX:      95,
			StartLift:  20,
		},
		Coins: JumpCoins{
			SmallChance: 0.6,
			BigChance:   0.7,
			OffsetY:     12,
			Radius:      8,
		},
		Scoring: JumpScoring{
			SmallCoin:     1,
			BigCoin:       5,
			HeightDivisor: 10,
		},
		Background: JumpBackground{
			TextureSize:   64,
			WallWidth:     40,
			Parallax:      0.5,
			SpeckleChance: 0.2,
			BeigeChance:   0.6,
			Grooves:       8,
			GrooveFill:    0.7,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "height",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				TileReduction:   2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jump":
		return defaultJumpYAML
	default:
		return nil
	}
}
