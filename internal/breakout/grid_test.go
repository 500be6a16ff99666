package breakout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreak/internal/core"
)

var testLayout = BrickLayout{Width: 50, Height: 15, Padding: 5, OffsetTop: 30, OffsetLeft: 25}

func TestNewGridInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
	}{
		{"zero columns", 0, 5},
		{"zero rows", 8, 0},
		{"negative columns", -1, 3},
		{"both zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.columns, tc.rows, testLayout, nil)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrInvalidGrid), "expected ErrInvalidGrid, got %v", err)
		})
	}
}

func TestNewGridPositions(t *testing.T) {
	g, err := NewGrid(8, 5, testLayout, nil)
	require.NoError(t, err)

	assert.Equal(t, core.RectF{X: 25, Y: 30, W: 50, H: 15}, g.Rect(0, 0))
	assert.Equal(t, core.RectF{X: 80, Y: 50, W: 50, H: 15}, g.Rect(1, 1))
	assert.Equal(t, core.RectF{X: 410, Y: 110, W: 50, H: 15}, g.Rect(7, 4))
}

func TestNewGridAllAlive(t *testing.T) {
	g, err := NewGrid(8, 5, testLayout, nil)
	require.NoError(t, err)

	assert.Equal(t, 40, g.AliveCount())
	assert.True(t, g.AllAlive())
	assert.False(t, g.AllDestroyed())
	for _, b := range g.Bricks() {
		assert.True(t, b.Alive)
	}
}

func TestGridRowColors(t *testing.T) {
	palette := []core.Color{core.ColorRed, core.ColorBlue}
	g, err := NewGrid(2, 5, testLayout, palette)
	require.NoError(t, err)

	for c := range 2 {
		for r := range 5 {
			assert.Equal(t, palette[r%2], g.Brick(c, r).Color, "brick (%d,%d)", c, r)
			assert.Equal(t, r, g.Brick(c, r).Row)
		}
	}

	plain, err := NewGrid(1, 1, testLayout, nil)
	require.NoError(t, err)
	assert.Equal(t, core.ColorDefault, plain.Brick(0, 0).Color)
}

func TestGridDestroyAndReset(t *testing.T) {
	g, err := NewGrid(2, 2, testLayout, nil)
	require.NoError(t, err)

	assert.True(t, g.Destroy(1, 0))
	assert.False(t, g.Destroy(1, 0), "destroying twice should report false")
	assert.Equal(t, 3, g.AliveCount())
	assert.False(t, g.AllAlive())

	g.Destroy(0, 0)
	g.Destroy(0, 1)
	g.Destroy(1, 1)
	assert.True(t, g.AllDestroyed())

	g.Reset()
	assert.True(t, g.AllAlive())
	assert.Equal(t, 4, g.AliveCount())
}

func TestGridHitAtStrict(t *testing.T) {
	g, err := NewGrid(8, 5, testLayout, nil)
	require.NoError(t, err)

	col, row, ok := g.HitAt(50, 37)
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	// Edges and padding gaps are misses.
	_, _, ok = g.HitAt(25, 37)
	assert.False(t, ok, "left edge")
	_, _, ok = g.HitAt(50, 45)
	assert.False(t, ok, "bottom edge")
	_, _, ok = g.HitAt(77, 37)
	assert.False(t, ok, "padding gap")

	g.Destroy(0, 0)
	_, _, ok = g.HitAt(50, 37)
	assert.False(t, ok, "destroyed bricks are not hit")
}

func TestGridHitAtScanOrder(t *testing.T) {
	// Negative padding makes neighbours overlap.
	overlap := BrickLayout{Width: 50, Height: 15, Padding: -10}
	g, err := NewGrid(2, 2, overlap, nil)
	require.NoError(t, err)

	// (45, 10) lies in all four bricks; column 0, row 0 comes first.
	col, row, ok := g.HitAt(45, 10)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{col, row})

	g.Destroy(0, 0)
	col, row, _ = g.HitAt(45, 10)
	assert.Equal(t, [2]int{0, 1}, [2]int{col, row}, "rows are scanned within a column first")

	g.Destroy(0, 1)
	col, row, _ = g.HitAt(45, 10)
	assert.Equal(t, [2]int{1, 0}, [2]int{col, row})
}
