package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Session holds the state of one game: paddle, ball, grid and score.
// It has no notion of time or run state; the Controller decides when to
// call Step. A Session is not safe for concurrent use.
type Session struct {
	width  float64
	height float64

	paddle Paddle
	ball   Ball
	grid   *Grid
	score  int
	ticks  uint64
	intent core.Direction

	points      int
	ballSpeed   float64
	spawnOffset float64
	maxBounce   float64 // radians
	clampBounce bool

	rng *SimpleRNG
}

// NewSession builds a session from a validated configuration and resets it.
// The seed drives the ball's initial horizontal direction.
func NewSession(cfg config.BreakoutConfig, seed int64) (*Session, error) {
	grid, err := NewGrid(cfg.Bricks.Columns, cfg.Bricks.Rows, BrickLayout{
		Width:      cfg.Bricks.Width,
		Height:     cfg.Bricks.Height,
		Padding:    cfg.Bricks.Padding,
		OffsetTop:  cfg.Bricks.OffsetTop,
		OffsetLeft: cfg.Bricks.OffsetLeft,
	}, cfg.BrickPalette())
	if err != nil {
		return nil, err
	}

	s := &Session{
		width:  cfg.Board.Width,
		height: cfg.Board.Height,
		paddle: Paddle{
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Speed:  cfg.Paddle.Speed,
			Color:  cfg.PaddleColor(),
		},
		ball: Ball{
			Radius: cfg.Ball.Radius,
			Color:  cfg.BallColor(),
		},
		grid:        grid,
		points:      cfg.Bricks.Points,
		ballSpeed:   cfg.Ball.Speed,
		spawnOffset: cfg.Ball.SpawnOffset,
		maxBounce:   cfg.Physics.MaxBounceAngleDeg * math.Pi / 180,
		clampBounce: cfg.Physics.ClampBounce,
		rng:         NewSimpleRNG(seed),
	}
	s.Reset()
	return s, nil
}

// Reset zeroes the score, centers the paddle, respawns the ball with a
// random horizontal direction and rebuilds the grid.
func (s *Session) Reset() {
	s.score = 0
	s.ticks = 0
	s.intent = core.DirNone

	s.paddle.X = (s.width - s.paddle.Width) / 2
	s.paddle.Y = s.height - s.paddle.Height
	s.paddle.DX = 0

	s.ball.X = s.width / 2
	s.ball.Y = s.height - s.spawnOffset
	s.ball.DX = s.ballSpeed
	if s.rng.Coin() {
		s.ball.DX = -s.ballSpeed
	}
	s.ball.DY = -s.ballSpeed

	s.grid.Reset()
}

// SetIntent sets the paddle velocity for the following steps.
func (s *Session) SetIntent(d core.Direction) {
	s.intent = d
	s.paddle.DX = d.Sign() * s.paddle.Speed
}

// Step advances the simulation by one tick: move the paddle and clamp it to
// the board, move the ball, then resolve collisions. Returns the terminal
// outcome if the round ended on this tick.
func (s *Session) Step() Outcome {
	s.ticks++

	s.paddle.X = core.Clamp(s.paddle.X+s.paddle.DX, 0, s.width-s.paddle.Width)

	s.ball.X += s.ball.DX
	s.ball.Y += s.ball.DY

	return s.resolveCollisions()
}

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball { return s.ball }

// Grid returns the brick grid.
func (s *Session) Grid() *Grid { return s.grid }

// Score returns the current score.
func (s *Session) Score() int { return s.score }



