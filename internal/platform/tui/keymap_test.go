package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickbreak/internal/core"
)

func TestKeyMapBindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, km.Left},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, km.Left},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, km.Right},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, km.Right},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.Start},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, km.Start},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, km.Reset},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, key.Matches(tc.msg, tc.binding), "%q should match", tc.msg.String())
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())

	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	assert.Equal(t, 7, total)
}

func TestIntentLatchHolds(t *testing.T) {
	l := newIntentLatch(3)

	l.press(core.DirLeft)
	assert.Equal(t, core.DirLeft, l.next())
	assert.Equal(t, core.DirLeft, l.next())
	assert.Equal(t, core.DirLeft, l.next())
	assert.Equal(t, core.DirNone, l.next(), "hold expired")
}

func TestIntentLatchRepeatRefreshes(t *testing.T) {
	l := newIntentLatch(2)

	l.press(core.DirRight)
	l.next()
	l.press(core.DirRight)
	assert.Equal(t, core.DirRight, l.next())
	assert.Equal(t, core.DirRight, l.next())
	assert.Equal(t, core.DirNone, l.next())
}

func TestIntentLatchSwitchAndRelease(t *testing.T) {
	l := newIntentLatch(5)

	l.press(core.DirLeft)
	l.press(core.DirRight)
	assert.Equal(t, core.DirRight, l.next(), "new direction replaces the old one")

	l.release()
	assert.Equal(t, core.DirNone, l.next())

	l.press(core.DirLeft)
	l.press(core.DirNone)
	assert.Equal(t, core.DirNone, l.next())
}

func TestIntentLatchMinimumHold(t *testing.T) {
	l := newIntentLatch(0)

	l.press(core.DirLeft)
	assert.Equal(t, core.DirLeft, l.next(), "a press lasts at least one tick")
	assert.Equal(t, core.DirNone, l.next())
}
