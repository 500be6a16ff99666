package breakout

import "math"

// Snapshot is a read-only copy of the game state handed to presenters.
type Snapshot struct {
	Tick        uint64
	BoardWidth  float64
	BoardHeight float64

	Paddle Paddle
	Ball   Ball

	// Bricks is column-major: index = col*Rows + row.
	Bricks  []Brick
	Columns int
	Rows    int
	Alive   int

	Score   int
	Phase   Phase
	Outcome Outcome
}

func (s *Session) snapshot() Snapshot {
	g := s.Grid()
	return Snapshot{
		Tick:        s.ticks,
		BoardWidth:  s.width,
		BoardHeight: s.height,
		Paddle:      s.Paddle(),
		Ball:        s.Ball(),
		Bricks:      g.Bricks(),
		Columns:     g.Columns,
		Rows:        g.Rows,
		Alive:       g.AliveCount(),
		Score:       s.Score(),
	}
}

// Brick returns the brick at (col, row).
func (snap Snapshot) Brick(col, row int) Brick {
	return snap.Bricks[col*snap.Rows+row]
}

// Hash computes a deterministic hash of the snapshot for testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + math.Float64bits(snap.Ball.DX)
	h = h*31 + math.Float64bits(snap.Ball.DY)
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Alive)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation

	for _, b := range snap.Bricks {
		if b.Alive {
			h = h*31 + 1
		} else {
			h *= 31
		}
	}
	return h
}
