package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDirName is the per-user data directory under $HOME.
const HomeDirName = ".rikkajump"

// LoadJump loads Rikka Jump configuration.
// Search order: customPath -> ~/.rikkajump/configs/jump.yaml -> ./configs/jump.yaml -> embedded default
func LoadJump(customPath string) (JumpConfig, error) {
	// Start from the defaults so a partial file only overrides what it sets
	cfg := DefaultJumpConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("jump.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "jump.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultJumpYAML, &cfg); err != nil {
		return DefaultJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unreadable or invalid files
// are skipped so the next location in the search order is used.
func tryLoad(path string) (JumpConfig, bool) {
	cfg := DefaultJumpConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HomeDirName, "configs", filename)
}

// ApplyJumpPreset modifies the config based on a difficulty preset.
func ApplyJumpPreset(cfg *JumpConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports configurations the generator or physics cannot run with.
func (c JumpConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.World.Width {
		errs = append(errs, errors.New("player is wider than the world"))
	}

	p := c.Platforms
	if p.TileWidth <= 0 || p.TileHeight <= 0 {
		errs = append(errs, errors.New("platform tile size must be positive"))
	}
	if p.MinTiles <= 0 || p.MinTiles > p.MaxTiles {
		errs = append(errs, fmt.Errorf("platform tiles range [%d, %d] is invalid", p.MinTiles, p.MaxTiles))
	}
	if p.MinDY <= 0 || p.MinDY > p.MaxDY {
		errs = append(errs, fmt.Errorf("platform dy range [%d, %d] is invalid", p.MinDY, p.MaxDY))
	}
	if p.MaxDX < 0 {
		errs = append(errs, errors.New("platform max_dx must not be negative"))
	}
	if c.World.WallMargin < 0 || 2*c.World.WallMargin+p.MaxTiles*p.TileWidth > c.World.Width {
		errs = append(errs, errors.New("widest platform does not fit between the wall margins"))
	}

	if c.Coins.SmallChance < 0 || c.Coins.SmallChance > c.Coins.BigChance || c.Coins.BigChance > 1 {
		errs = append(errs, fmt.Errorf("coin chances must satisfy 0 <= small <= big <= 1, got %v/%v",
			c.Coins.SmallChance, c.Coins.BigChance))
	}
	if c.Coins.Radius <= 0 {
		errs = append(errs, errors.New("coin radius must be positive"))
	}
	if c.Scoring.HeightDivisor <= 0 {
		errs = append(errs, errors.New("height divisor must be positive"))
	}
	if c.Physics.CameraTarget <= 0 || c.Physics.CameraTarget >= 1 {
		errs = append(errs, fmt.Errorf("camera target must be in (0, 1), got %v", c.Physics.CameraTarget))
	}
	if c.Background.TextureSize <= 0 {
		errs = append(errs, errors.New("background texture size must be positive"))
	}

	return errors.Join(errs...)
}
