// Package config provides YAML-based game configuration loading, validation
// and hot reload for brickfall.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all tunable parameters of the game.
// Defaults reproduce the classic tuning.
type BreakoutConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Gift       GiftConfig       `yaml:"gift"`
	Background BackgroundConfig `yaml:"background"`
	Input      InputConfig      `yaml:"input"`
}

// CanvasConfig defines how the playfield is sized from the host window.
type CanvasConfig struct {
	MaxWidth     float64 `yaml:"max_width"`
	HeightRatio  float64 `yaml:"height_ratio"`
	WindowMargin float64 `yaml:"window_margin"` // Subtracted from the window width
}

// BallConfig is the prototype every new ball is made from.
type BallConfig struct {
	Size  float64 `yaml:"size"`  // Radius
	Speed float64 `yaml:"speed"` // Rebound speed off the paddle
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the canvas bottom to the paddle top
}

// BricksConfig defines brick geometry and grid growth.
type BricksConfig struct {
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	Padding       float64  `yaml:"padding"`
	OffsetX       float64  `yaml:"offset_x"`
	OffsetY       float64  `yaml:"offset_y"`
	HitsToBreak   int      `yaml:"hits_to_break"`
	SpecialChance float64  `yaml:"special_chance"`
	Types         []string `yaml:"types"`
	BaseRows      int      `yaml:"base_rows"`
	MaxRows       int      `yaml:"max_rows"`
	BaseCols      int      `yaml:"base_cols"`
	MaxCols       int      `yaml:"max_cols"`
}

// GiftConfig defines the balls released by a special brick.
type GiftConfig struct {
	Speed float64 `yaml:"speed"` // Magnitude of both velocity components
	// Trigger is "hit" (release on every hit) or "destroy" (release on the breaking hit only).
	Trigger string `yaml:"trigger"`
}

// Gift triggers.
const (
	GiftOnDestroy = "destroy"
	GiftOnHit     = "hit"
)

// BackgroundConfig defines the level-up background color.
type BackgroundConfig struct {
	HueStep    float64 `yaml:"hue_step"` // Degrees of hue per level
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// InputConfig defines host input emulation.
type InputConfig struct {
	// ReleaseFrames stops the paddle this many frames after the last
	// directional key on hosts that never report key release. 0 disables.
	ReleaseFrames int `yaml:"release_frames"`
}

// KnownBrickTypes lists the cosmetic brick types the renderer can draw.
var KnownBrickTypes = []string{"normal", "airplane", "car", "heart"}

// Validate checks the configuration and reports every problem found.
func (c BreakoutConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("canvas.max_width", c.Canvas.MaxWidth)
	positive("canvas.height_ratio", c.Canvas.HeightRatio)
	positive("ball.size", c.Ball.Size)
	positive("ball.speed", c.Ball.Speed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("gift.speed", c.Gift.Speed)

	if c.Bricks.HitsToBreak < 1 {
		errs = append(errs, fmt.Errorf("bricks.hits_to_break must be at least 1, got %d", c.Bricks.HitsToBreak))
	}
	if c.Bricks.SpecialChance < 0 || c.Bricks.SpecialChance > 1 {
		errs = append(errs, fmt.Errorf("bricks.special_chance must be within [0, 1], got %v", c.Bricks.SpecialChance))
	}
	if c.Bricks.BaseRows < 0 || c.Bricks.MaxRows < 1 || c.Bricks.BaseCols < 0 || c.Bricks.MaxCols < 1 {
		errs = append(errs, errors.New("bricks grid bounds must be non-negative with max_rows and max_cols at least 1"))
	}
	if len(c.Bricks.Types) == 0 {
		errs = append(errs, errors.New("bricks.types must not be empty"))
	}
	for _, t := range c.Bricks.Types {
		if !isKnownBrickType(t) {
			errs = append(errs, fmt.Errorf("bricks.types: unknown type %q", t))
		}
	}
	if c.Gift.Trigger != GiftOnDestroy && c.Gift.Trigger != GiftOnHit {
		errs = append(errs, fmt.Errorf("gift.trigger must be %q or %q, got %q", GiftOnDestroy, GiftOnHit, c.Gift.Trigger))
	}
	if c.Input.ReleaseFrames < 0 {
		errs = append(errs, fmt.Errorf("input.release_frames must not be negative, got %d", c.Input.ReleaseFrames))
	}

	return errors.Join(errs...)
}

func isKnownBrickType(name string) bool {
	for _, k := range KnownBrickTypes {
		if k == name {
			return true
		}
	}
	return false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
