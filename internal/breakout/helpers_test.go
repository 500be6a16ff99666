package breakout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// recorder is a Presenter that keeps every event.
type recorder struct {
	mu      sync.Mutex
	ready   []string
	results []Result
	frames  []Snapshot
}

func (r *recorder) Ready(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ready = append(r.ready, msg)
}

func (r *recorder) GameOver(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *recorder) Frame(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, snap)
}

func (r *recorder) counts() (ready, results, frames int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ready), len(r.results), len(r.frames)
}

func (r *recorder) lastResult() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.results) == 0 {
		return Result{}
	}
	return r.results[len(r.results)-1]
}

// leakyClock hands out tickers whose Stop does nothing, so tests can fire
// a callback after the controller has cancelled its loop.
type leakyClock struct {
	fns []func()
}

type nopTicker struct{}

func (nopTicker) Stop() {}

func (c *leakyClock) Every(_ time.Duration, fn func()) core.Ticker {
	c.fns = append(c.fns, fn)
	return nopTicker{}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultBreakoutConfig(), 1)
	require.NoError(t, err)
	return s
}

func newTestController(t *testing.T, opts ...Option) (*Controller, *core.ManualClock, *recorder) {
	t.Helper()
	clock := core.NewManualClock()
	rec := &recorder{}
	c, err := NewController(config.DefaultBreakoutConfig(), clock, rec, opts...)
	require.NoError(t, err)
	return c, clock, rec
}

// placeBall puts the ball so that after the next move its center is at (x, y).
func (s *Session) placeBall(x, y, dx, dy float64) {
	s.ball.X = x - dx
	s.ball.Y = y - dy
	s.ball.DX = dx
	s.ball.DY = dy
}
