package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{
			MaxWidth:     800,
			HeightRatio:  0.75,
			WindowMargin: 20,
		},
		Ball: BallConfig{
			Size:  10,
			Speed: 6,
			DX:    4,
			DY:    -4,
		},
		Paddle: PaddleConfig{
			Width:        80,
			Height:       10,
			Speed:        10,
			BottomOffset: 20,
		},
		Bricks: BricksConfig{
			Width:         70,
			Height:        20,
			Padding:       10,
			OffsetX:       45,
			OffsetY:       60,
			HitsToBreak:   3,
			SpecialChance: 0.1,
			Types:         []string{"normal", "airplane", "car"},
			BaseRows:      9,
			MaxRows:       12,
			BaseCols:      5,
			MaxCols:       8,
		},
		Gift: GiftConfig{
			Speed:   3,
			Trigger: GiftOnHit,
		},
		Background: BackgroundConfig{
			HueStep:    10,
			Saturation: 0.7,
			Lightness:  0.5,
		},
		Input: InputConfig{
			ReleaseFrames: 12,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `brickfall config`.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
