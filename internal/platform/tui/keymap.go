package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// KeyMap holds the game's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Stop  key.Binding
	Start key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "stop"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/restart"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Help, k.Quit}
}

// FullHelp returns all bindings, grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Start, k.Reset},
		{k.Help, k.Quit},
	}
}

// intentLatch turns key presses into a held direction. Terminals send no
// key release events, so a press holds for a number of ticks and key
// auto-repeat keeps refreshing it.
type intentLatch struct {
	hold  int
	left  int
	right int
}

func newIntentLatch(holdTicks int) *intentLatch {
	return &intentLatch{hold: max(holdTicks, 1)}
}

// press holds d and releases the opposite direction.
func (l *intentLatch) press(d core.Direction) {
	switch d {
	case core.DirLeft:
		l.left, l.right = l.hold, 0
	case core.DirRight:
		l.left, l.right = 0, l.hold
	default:
		l.release()
	}
}

func (l *intentLatch) release() {
	l.left, l.right = 0, 0
}

// next returns the held direction for this tick and counts the hold down.
func (l *intentLatch) next() core.Direction {
	d := core.IntentFlags{Left: l.left > 0, Right: l.right > 0}.Direction()
	if l.left > 0 {
		l.left--
	}
	if l.right > 0 {
		l.right--
	}
	return d
}
