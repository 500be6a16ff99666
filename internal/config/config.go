// Package config provides YAML-based game configuration loading and
// validation for the brick breaker.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// BreakoutConfig contains all configuration for the brick breaker.
// Lengths are in board units (480x320 by default), speeds in board
// units per tick.
type BreakoutConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Loop     LoopConfig     `yaml:"loop"`
	Input    InputConfig    `yaml:"input"`
	Messages MessagesConfig `yaml:"messages"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player's paddle. The paddle sits flush with the
// bottom of the board.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// BallConfig defines the ball and its spawn point.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Initial |dx| and |dy|
	SpawnOffset float64 `yaml:"spawn_offset"` // Spawn distance above the bottom edge
	Color       string  `yaml:"color"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Columns    int      `yaml:"columns"`
	Rows       int      `yaml:"rows"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Padding    float64  `yaml:"padding"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	Points     int      `yaml:"points"`
	Colors     []string `yaml:"colors"` // One per row, cycled when rows exceed colors
}

// PhysicsConfig defines paddle bounce shaping.
type PhysicsConfig struct {
	MaxBounceAngleDeg float64 `yaml:"max_bounce_angle_deg"`
	ClampBounce       bool    `yaml:"clamp_bounce"`
}

// LoopConfig defines the simulation cadence.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// InputConfig defines how terminal key presses become intent.
type InputConfig struct {
	// HoldTicks is how long a single key press keeps the paddle moving.
	// Terminals report no key release, so auto-repeat refreshes the hold.
	HoldTicks int `yaml:"hold_ticks"`
}

// MessagesConfig holds the overlay texts.
type MessagesConfig struct {
	Ready string `yaml:"ready"`
	Win   string `yaml:"win"`
	Loss  string `yaml:"loss"`
}

// Validate checks that the configuration can build a playable board.
// All problems are reported together.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Board.Width > 0 && c.Board.Height > 0, "board size must be positive, got %vx%v", c.Board.Width, c.Board.Height)
	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.Board.Width, "paddle width must be in (0, %v], got %v", c.Board.Width, c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.Speed >= 0, "paddle speed must not be negative, got %v", c.Paddle.Speed)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed > 0, "ball speed must be positive, got %v", c.Ball.Speed)
	check(c.Bricks.Columns > 0 && c.Bricks.Rows > 0, "brick grid must be at least 1x1, got %dx%d", c.Bricks.Columns, c.Bricks.Rows)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height)
	check(c.Bricks.Points >= 0, "brick points must not be negative, got %d", c.Bricks.Points)
	check(c.Physics.MaxBounceAngleDeg > 0 && c.Physics.MaxBounceAngleDeg < 90, "max bounce angle must be in (0, 90), got %v", c.Physics.MaxBounceAngleDeg)
	check(c.Loop.TickRate > 0, "tick rate must be positive, got %d", c.Loop.TickRate)
	check(c.Input.HoldTicks >= 0, "hold ticks must not be negative, got %d", c.Input.HoldTicks)

	for _, name := range append([]string{c.Paddle.Color, c.Ball.Color}, c.Bricks.Colors...) {
		if name == "" {
			continue
		}
		_, ok := core.ParseColor(name)
		check(ok, "unknown color %q", name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}

// BrickPalette resolves the row colors. Unknown or missing names fall back to
// the default terminal color.
func (c BreakoutConfig) BrickPalette() []core.Color {
	palette := make([]core.Color, 0, len(c.Bricks.Colors))
	for _, name := range c.Bricks.Colors {
		col, _ := core.ParseColor(name)
		palette = append(palette, col)
	}
	return palette
}

// PaddleColor resolves the paddle color.
func (c BreakoutConfig) PaddleColor() core.Color {
	col, _ := core.ParseColor(c.Paddle.Color)
	return col
}

// BallColor resolves the ball color.
func (c BreakoutConfig) BallColor() core.Color {
	col, _ := core.ParseColor(c.Ball.Color)
	return col
}
