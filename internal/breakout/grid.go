package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// ErrInvalidGrid is returned when a grid is requested with non-positive
// dimensions.
var ErrInvalidGrid = errors.New("breakout: invalid grid")

// BrickLayout holds the shared brick size and the spacing used to place
// bricks on the board.
type BrickLayout struct {
	Width      float64
	Height     float64
	Padding    float64
	OffsetTop  float64
	OffsetLeft float64
}

// Position returns the top-left corner of the brick at (col, row).
func (l BrickLayout) Position(col, row int) (x, y float64) {
	x = float64(col)*(l.Width+l.Padding) + l.OffsetLeft
	y = float64(row)*(l.Height+l.Padding) + l.OffsetTop
	return x, y
}

// Grid is a fixed Columns x Rows collection of bricks, indexed
// [column][row]. Positions are computed once at construction.
type Grid struct {
	Columns int
	Rows    int

	layout  BrickLayout
	palette []core.Color
	bricks  [][]Brick
	alive   int
}

// NewGrid builds a grid with every brick alive. Row r takes color
// palette[r % len(palette)]; an empty palette leaves the default color.
func NewGrid(columns, rows int, layout BrickLayout, palette []core.Color) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, columns, rows)
	}

	g := &Grid{
		Columns: columns,
		Rows:    rows,
		layout:  layout,
		palette: append([]core.Color(nil), palette...),
	}
	g.Reset()
	return g, nil
}

// Reset rebuilds every brick as alive.
func (g *Grid) Reset() {
	g.bricks = make([][]Brick, g.Columns)
	for c := range g.Columns {
		g.bricks[c] = make([]Brick, g.Rows)
		for r := range g.Rows {
			x, y := g.layout.Position(c, r)
			b := Brick{
				X:      x,
				Y:      y,
				Width:  g.layout.Width,
				Height: g.layout.Height,
				Alive:  true,
				Row:    r,
			}
			if len(g.palette) > 0 {
				b.Color = g.palette[r%len(g.palette)]
			}
			g.bricks[c][r] = b
		}
	}
	g.alive = g.Columns * g.Rows
}

// Brick returns a copy of the brick at (col, row).
func (g *Grid) Brick(col, row int) Brick {
	return g.bricks[col][row]
}

// Rect returns the rectangle of the brick at (col, row). Collision checks
// and rendering both go through it.
func (g *Grid) Rect(col, row int) core.RectF {
	return g.bricks[col][row].Rect()
}

// Destroy marks a brick destroyed. Returns false if it already was.
func (g *Grid) Destroy(col, row int) bool {
	b := &g.bricks[col][row]
	if !b.Alive {
		return false
	}
	b.Alive = false
	g.alive--
	return true
}

// AliveCount returns the number of bricks still standing.
func (g *Grid) AliveCount() int {
	return g.alive
}

// AllAlive reports whether no brick has been destroyed yet.
func (g *Grid) AllAlive() bool {
	return g.alive == g.Columns*g.Rows
}

// AllDestroyed reports whether the grid is cleared.
func (g *Grid) AllDestroyed() bool {
	return g.alive == 0
}

// HitAt returns the first alive brick, scanning column-major then
// row-major, whose rectangle strictly contains (x, y).
func (g *Grid) HitAt(x, y float64) (col, row int, ok bool) {
	for c := range g.Columns {
		for r := range g.Rows {
			b := g.bricks[c][r]
			if b.Alive && b.Rect().ContainsStrict(x, y) {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

// Bricks returns a column-major copy of every brick.
func (g *Grid) Bricks() []Brick {
	out := make([]Brick, 0, g.Columns*g.Rows)
	for c := range g.Columns {
		out = append(out, g.bricks[c]...)
	}
	return out
}
