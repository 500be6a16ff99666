// Package core holds the pieces shared by the game and its front ends:
// geometry, the cell screen, colors, input intent and clocks. It imports
// no UI library.
package core

import "cmp"

// Rect is a block of screen cells.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the w by h block whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the block.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the block.
func (r Rect) Bottom() int { return r.Y + r.H }

// Inset shrinks the block by n cells on every side, never below 1x1.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 1), H: max(r.H-2*n, 1)}
}

// RectF is a rectangle in board units, Y growing downwards.
type RectF struct {
	X, Y, W, H float64
}

func (r RectF) Right() float64   { return r.X + r.W }
func (r RectF) Bottom() float64  { return r.Y + r.H }
func (r RectF) CenterX() float64 { return r.X + r.W/2 }
func (r RectF) CenterY() float64 { return r.Y + r.H/2 }

// ContainsStrict reports whether (x, y) lies strictly inside the rectangle.
// Points on an edge are outside.
func (r RectF) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
