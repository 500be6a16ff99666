package core

import (
	"sync"
	"time"
)

// Ticker is a handle to an active periodic callback.
// Stop is idempotent; after it returns the callback is never started again.
type Ticker interface {
	Stop()
}

// Clock schedules a callback at a fixed interval.
// The game controller depends on this instead of on real time so the
// simulation can be driven synchronously.
type Clock interface {
	Every(interval time.Duration, fn func()) Ticker
}

// TickerClock fires callbacks from a time.Ticker on a dedicated goroutine.
type TickerClock struct{}

// Every starts a goroutine that calls fn every interval until stopped.
func (TickerClock) Every(interval time.Duration, fn func()) Ticker {
	t := &realTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTicker) run(fn func()) {
	defer t.ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// A tick and a stop can be ready together; stop wins.
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

// Stop ends the goroutine. Safe to call from inside the callback.
func (t *realTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}

// ManualClock only fires when told to. Tests use it to step the game
// without real time passing, and the terminal UI fires it from its own
// tick message so all mutation stays on the UI goroutine.
type ManualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

// NewManualClock creates a clock with no registered callbacks.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

type manualTicker struct {
	clock    *ManualClock
	interval time.Duration
	fn       func()
	stopped  bool
}

// Every registers fn. The interval is recorded but not enforced.
func (c *ManualClock) Every(interval time.Duration, fn func()) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &manualTicker{clock: c, interval: interval, fn: fn}
	c.tickers = append(c.tickers, t)
	return t
}

// Fire calls every active callback once, in registration order.
// Returns the number of callbacks invoked.
func (c *ManualClock) Fire() int {
	c.mu.Lock()
	pending := make([]*manualTicker, len(c.tickers))
	copy(pending, c.tickers)
	c.mu.Unlock()

	fired := 0
	for _, t := range pending {
		// A previous callback in this round may have stopped t.
		c.mu.Lock()
		stopped := t.stopped
		c.mu.Unlock()
		if stopped {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// FireN calls Fire n times and returns the total number of invocations.
func (c *ManualClock) FireN(n int) int {
	total := 0
	for range n {
		total += c.Fire()
	}
	return total
}

// Active returns the number of callbacks that have not been stopped.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

// Stop unregisters the callback.
func (t *manualTicker) Stop() {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true
	for i, other := range c.tickers {
		if other == t {
			c.tickers = append(c.tickers[:i], c.tickers[i+1:]...)
			break
		}
	}
}
