// Package breakout implements the brick breaker simulation: entities, the
// brick grid, collision resolution, the per-tick step and the controller
// that owns the run state and tick loop.
//
// All lengths are board units with the origin at the top-left corner and
// y growing downwards.
package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Paddle is the player's paddle. X is the left edge; Y is fixed.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	DX     float64 // Horizontal velocity applied on the next step
	Speed  float64
	Color  core.Color
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Rect returns the paddle's rectangle.
func (p Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Ball is the ball. X and Y are its center.
type Ball struct {
	X      float64
	Y      float64
	Radius float64
	DX     float64
	DY     float64
	Color  core.Color
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Brick is a single grid cell. Color is cosmetic.
type Brick struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Alive  bool
	Row    int
	Color  core.Color
}

// Rect returns the brick's rectangle.
func (b Brick) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
