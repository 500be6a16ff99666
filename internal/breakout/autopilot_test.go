package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickbreak/internal/core"
)

func TestAutopilotDecide(t *testing.T) {
	a := Autopilot{Aim: 0.5, Deadzone: 2}
	paddle := Paddle{X: 100, Width: 80} // center 140, aim offset 20

	tests := []struct {
		name string
		ball Ball
		want core.Direction
	}{
		{"ball far left", Ball{X: 20, DX: -4}, core.DirLeft},
		{"ball far right", Ball{X: 300, DX: 4}, core.DirRight},
		{"moving left, on aim", Ball{X: 120, DX: -4}, core.DirNone},
		{"moving right, on aim", Ball{X: 160, DX: 4}, core.DirNone},
		{"moving left, under center", Ball{X: 140, DX: -4}, core.DirRight},
		{"moving right, under center", Ball{X: 140, DX: 4}, core.DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := a.Decide(Snapshot{Paddle: paddle, Ball: tc.ball})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAutopilotKeepsDirection(t *testing.T) {
	s := newTestSession(t)
	a := DefaultAutopilot()

	// Ball coming down towards the middle, moving left.
	s.placeBall(200, 290, -2, 4)
	for range 40 {
		snap := s.snapshot()
		if snap.Ball.DY < 0 {
			break
		}
		s.SetIntent(a.Decide(snap))
		s.Step()
	}

	assert.Negative(t, s.Ball().DY, "ball returned by the paddle")
	assert.Negative(t, s.Ball().DX, "horizontal direction kept")
}
