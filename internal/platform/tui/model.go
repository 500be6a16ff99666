package tui

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

const restartHint = "SPACE to restart"

// overlayPresenter keeps the message box text in sync with controller
// events. Frames are pulled in View instead.
type overlayPresenter struct {
	mu      sync.Mutex
	overlay breakout.Overlay
}

func (p *overlayPresenter) Ready(message string) {
	p.set(breakout.Overlay{Title: message})
}

func (p *overlayPresenter) GameOver(res breakout.Result) {
	o := breakout.Overlay{Title: res.Message}
	if res.CanRestart {
		o.Hint = restartHint
	}
	p.set(o)
}

func (p *overlayPresenter) Frame(breakout.Snapshot) {}

func (p *overlayPresenter) set(o breakout.Overlay) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overlay = o
}

func (p *overlayPresenter) get() breakout.Overlay {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.overlay
}

// Model is the Bubble Tea model for one game. The controller runs on a
// ManualClock fired from TickMsg, so every mutation happens on the Bubble
// Tea goroutine.
type Model struct {
	ctrl      *breakout.Controller
	clock     *core.ManualClock
	presenter *overlayPresenter
	latch     *intentLatch
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	interval  time.Duration
	quitting  bool
}

// NewModel creates a model with its own controller.
func NewModel(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	rt = rt.Resolve(cfg.Loop.TickRate)
	cfg.Loop.TickRate = rt.TickRate

	clock := core.NewManualClock()
	presenter := &overlayPresenter{}
	ctrl, err := breakout.NewController(cfg, clock, presenter,
		breakout.WithSeed(rt.Seed),
		breakout.WithLogger(logger),
	)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rt.Cols

	return Model{
		ctrl:      ctrl,
		clock:     clock,
		presenter: presenter,
		latch:     newIntentLatch(cfg.Input.HoldTicks),
		screen:    core.NewScreen(rt.Cols, max(rt.Rows-1, 1)),
		keys:      DefaultKeyMap(),
		help:      h,
		interval:  ctrl.Interval(),
	}, nil
}

// Controller returns the model's game controller.
func (m Model) Controller() *breakout.Controller {
	return m.ctrl
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keys to intent and lifecycle commands.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.latch.press(core.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.latch.press(core.DirRight)
	case key.Matches(msg, m.keys.Stop):
		m.latch.release()
	case key.Matches(msg, m.keys.Start):
		m.startOrRestart()
	case key.Matches(msg, m.keys.Reset):
		m.latch.release()
		m.ctrl.Reset()
	}
	return m, nil
}

// startOrRestart starts an idle round, or resets an ended one.
func (m Model) startOrRestart() {
	if m.ctrl.Phase() == breakout.PhaseEnded {
		m.latch.release()
		m.ctrl.Reset()
		return
	}
	if m.ctrl.Start() {
		m.presenter.set(breakout.Overlay{})
	}
}

// handleResize processes window resize events. The last row is kept for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick hands the latched intent to the controller and fires its clock.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.ctrl.SetIntent(m.latch.next())
	m.clock.Fire()
	return m, tickCmd(m.interval)
}

// View renders the board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	breakout.Render(m.screen, m.ctrl.Snapshot(), m.presenter.get())

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
