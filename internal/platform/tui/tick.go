// Package tui provides the Bubble Tea front end for the brick breaker:
// the terminal loop, key bindings, screen rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one controller tick. Bubble Tea's timer is the only clock
// the terminal front end uses.
type TickMsg struct {
	At time.Time
}

// tickCmd schedules the next TickMsg one interval from now.
func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(at time.Time) tea.Msg {
		return TickMsg{At: at}
	})
}
