package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// BreakoutFile is the file name searched for in the config directories.
const BreakoutFile = "breakout.yaml"

// LoadBreakout loads the game configuration.
// Search order: customPath -> ~/.brickfall/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files may be partial; missing fields keep their default values.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return ParseBreakout(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(BreakoutFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBreakout(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", BreakoutFile)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := ParseBreakout(data, localPath); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBreakout(defaultBreakoutYAML, "embedded")
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBreakout decodes YAML on top of the defaults and validates the result.
// source only labels error messages.
func ParseBreakout(data []byte, source string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickfall", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal (and no preset) keeps the configured values.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 120
		cfg.Ball.Speed = 5
		cfg.Ball.DX = 3
		cfg.Ball.DY = -3
	case DifficultyHard:
		cfg.Paddle.Width = 60
		cfg.Ball.Speed = 8
		cfg.Ball.DX = 5
		cfg.Ball.DY = -5
	}
}
