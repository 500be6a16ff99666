package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Board: BoardConfig{
			Width:  480,
			Height: 320,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Speed:  7,
			Color:  "bright_yellow",
		},
		Ball: BallConfig{
			Radius:      5,
			Speed:       4,
			SpawnOffset: 15,
			Color:       "orange",
		},
		Bricks: BricksConfig{
			Columns:    8,
			Rows:       5,
			Width:      50,
			Height:     15,
			Padding:    5,
			OffsetTop:  30,
			OffsetLeft: 25,
			Points:     10,
			Colors:     []string{"bright_magenta", "bright_cyan", "bright_green", "bright_yellow", "bright_blue"},
		},
		Physics: PhysicsConfig{
			MaxBounceAngleDeg: 60,
			ClampBounce:       true,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Messages: MessagesConfig{
			Ready: "Press LEFT/RIGHT or buttons to move, Space/Fire to start!",
			Win:   "You Win! All Bricks Crushed!",
			Loss:  "Game Over! Try again.",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
