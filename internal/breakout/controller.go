package breakout

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Result is the terminal event sent to the presenter.
type Result struct {
	Outcome    Outcome
	Message    string
	CanRestart bool
}

// Presenter receives lifecycle events and frames from a Controller.
// Calls are made without the controller lock held, so a presenter may call
// back into the controller.
type Presenter interface {
	Ready(message string)
	GameOver(result Result)
	Frame(snap Snapshot)
}

// NopPresenter discards every event.
type NopPresenter struct{}

func (NopPresenter) Ready(string)    {}
func (NopPresenter) GameOver(Result) {}
func (NopPresenter) Frame(Snapshot)  {}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSeed sets the seed for the ball's initial direction. Without it the
// controller seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.seed = seed
		c.seeded = true
	}
}

// clockSeed picks the seed when none is given.
var clockSeed = func() int64 { return time.Now().UnixNano() }

// Controller owns a Session and its run state, and drives the tick loop
// on the injected clock. All methods are safe for concurrent use.
//
//	idle --Start--> running --(win|loss|End)--> ended --Reset--> idle
//	running --Stop--> idle
type Controller struct {
	mu        sync.Mutex
	session   *Session
	phase     Phase
	outcome   Outcome
	clock     core.Clock
	interval  time.Duration
	ticker    core.Ticker
	gen       uint64 // Bumped whenever the loop is started or cancelled
	presenter Presenter
	messages  config.MessagesConfig
	log       *log.Logger
	seed      int64
	seeded    bool
}

// NewController validates cfg, builds the session and resets it, which
// sends the ready message to the presenter.
func NewController(cfg config.BreakoutConfig, clock core.Clock, presenter Presenter, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	if clock == nil {
		clock = core.TickerClock{}
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}

	c := &Controller{
		clock:     clock,
		interval:  time.Second / time.Duration(cfg.Loop.TickRate),
		presenter: presenter,
		messages:  cfg.Messages,
		log:       log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.seeded {
		c.seed = clockSeed()
	}
	c.log.Debug("controller seeded", "seed", c.seed)

	session, err := NewSession(cfg, c.seed)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	c.session = session

	c.Reset()
	return c, nil
}

// Reset cancels any running loop, resets the session and returns to idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.stopLocked()
	c.session.Reset()
	c.phase = PhaseIdle
	c.outcome = OutcomeNone
	msg := c.messages.Ready
	c.mu.Unlock()

	c.log.Debug("game reset")
	c.presenter.Ready(msg)
}

// Start begins the tick loop. It only acts from idle: a running round is
// left alone and an ended round must be reset first. Reports whether the
// loop was started.
func (c *Controller) Start() bool {
	c.mu.Lock()
	if c.phase != PhaseIdle {
		c.mu.Unlock()
		return false
	}
	c.phase = PhaseRunning
	c.gen++
	gen := c.gen
	c.ticker = c.clock.Every(c.interval, func() { c.tick(gen) })
	c.mu.Unlock()

	c.log.Info("game started", "interval", c.interval)
	return true
}

// End finishes the round with a win or a loss, cancels the loop and
// notifies the presenter. Ending an already ended round does nothing, and
// so does an outcome that is neither a win nor a loss.
func (c *Controller) End(outcome Outcome) {
	if !outcome.Terminal() {
		c.log.Warn("end ignored", "outcome", outcome)
		return
	}
	c.mu.Lock()
	res, ok := c.endLocked(outcome)
	c.mu.Unlock()

	if ok {
		c.log.Info("game over", "outcome", outcome, "score", c.Score())
		c.presenter.GameOver(res)
	}
}

// Stop cancels a running loop without deciding the round: the board is
// kept and the phase goes back to idle, so Start resumes it. The presenter
// is not notified. Reports whether a loop was running.
func (c *Controller) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseRunning {
		return false
	}
	c.stopLocked()
	c.phase = PhaseIdle
	return true
}

// SetIntent records the paddle direction. It takes effect on the next tick.
func (c *Controller) SetIntent(d core.Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.SetIntent(d)
}

// Tick runs one simulation step if the round is running, independent of
// the clock. Returns the outcome of that step.
func (c *Controller) Tick() Outcome {
	c.mu.Lock()
	if c.phase != PhaseRunning {
		c.mu.Unlock()
		return OutcomeNone
	}
	return c.stepLocked()
}

// tick is the clock callback. Callbacks from a cancelled loop are dropped.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.phase != PhaseRunning {
		c.mu.Unlock()
		return
	}
	c.stepLocked()
}

// stepLocked steps the session, releases the lock and emits events.
func (c *Controller) stepLocked() Outcome {
	outcome := c.session.Step()

	var res Result
	ended := false
	if outcome.Terminal() {
		res, ended = c.endLocked(outcome)
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.presenter.Frame(snap)
	if ended {
		c.log.Info("game over", "outcome", outcome, "score", snap.Score, "ticks", snap.Tick)
		c.presenter.GameOver(res)
	}
	return outcome
}

func (c *Controller) endLocked(outcome Outcome) (Result, bool) {
	if c.phase == PhaseEnded {
		return Result{}, false
	}
	c.stopLocked()
	c.phase = PhaseEnded
	c.outcome = outcome

	msg := c.messages.Loss
	if outcome == OutcomeWin {
		msg = c.messages.Win
	}
	return Result{Outcome: outcome, Message: msg, CanRestart: true}, true
}

func (c *Controller) stopLocked() {
	c.gen++
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := c.session.snapshot()
	snap.Phase = c.phase
	snap.Outcome = c.outcome
	return snap
}

// Phase returns the current run state.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Outcome returns the result of the last round, or OutcomeNone.
func (c *Controller) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Score returns the current score.
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Score()
}

// Interval returns the tick interval.
func (c *Controller) Interval() time.Duration {
	return c.interval
}
