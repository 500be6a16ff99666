package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// resolveCollisions runs after the ball has moved. The checks look one step
// ahead (x+dx, y+dy) and are applied in a fixed order: side walls, top wall,
// bottom wall, paddle, bricks. A bottom miss returns immediately, and at
// most one brick is destroyed per call.
func (s *Session) resolveCollisions() Outcome {
	b := &s.ball

	if b.X+b.DX > s.width-b.Radius || b.X+b.DX < b.Radius {
		b.DX = -b.DX
	}
	if b.Y+b.DY < b.Radius {
		b.DY = -b.DY
	} else if b.Y+b.DY > s.height-b.Radius {
		return OutcomeLoss
	}

	s.bouncePaddle()

	col, row, ok := s.grid.HitAt(b.X, b.Y)
	if !ok {
		return OutcomeNone
	}
	b.DY = -b.DY
	s.grid.Destroy(col, row)
	s.score += s.points
	if s.grid.AllDestroyed() {
		return OutcomeWin
	}
	return OutcomeNone
}

// bouncePaddle reflects the ball upwards when its bottom edge has reached
// the paddle top and its center is strictly within the paddle span. The
// outgoing angle depends on where the ball hit: the far left edge sends it
// left at the maximum angle, dead center sends it straight up.
func (s *Session) bouncePaddle() {
	b := &s.ball
	p := s.paddle

	if b.Y+b.Radius <= p.Y || b.X <= p.X || b.X >= p.X+p.Width {
		return
	}

	rel := (p.CenterX() - b.X) / (p.Width / 2)
	if s.clampBounce {
		rel = core.Clamp(rel, -1, 1)
	}
	angle := rel * s.maxBounce

	b.DX = -math.Sin(angle) * math.Abs(b.DX)
	b.DY = -math.Abs(b.DY)
	b.Y = p.Y - b.Radius
}
