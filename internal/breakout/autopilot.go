package breakout

import "github.com/vovakirdan/brickbreak/internal/core"

// Autopilot is an input source that chases the ball with the paddle.
// It aims off-center so the ball keeps its horizontal direction after a
// bounce.
type Autopilot struct {
	// Aim is the hit offset from the paddle center as a fraction of half
	// the paddle width, in [0, 1).
	Aim float64
	// Deadzone is how close the aim point must get before the paddle stops.
	Deadzone float64
}

// DefaultAutopilot returns an autopilot tuned for the default board.
func DefaultAutopilot() Autopilot {
	return Autopilot{Aim: 0.9, Deadzone: 3}
}

// Decide returns the paddle intent for the given state.
func (a Autopilot) Decide(snap Snapshot) core.Direction {
	p := snap.Paddle
	b := snap.Ball

	// A ball moving left should meet the paddle left of center, and the
	// other way round.
	offset := a.Aim * p.Width / 2
	target := b.X + offset
	if b.DX > 0 {
		target = b.X - offset
	}

	diff := target - p.CenterX()
	switch {
	case diff < -a.Deadzone:
		return core.DirLeft
	case diff > a.Deadzone:
		return core.DirRight
	default:
		return core.DirNone
	}
}
