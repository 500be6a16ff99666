package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickbreak/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "SCORE: 10")
	s.SetColored(0, 1, '█', core.ColorBrightMagenta)
	s.SetColored(1, 1, '█', core.ColorBrightMagenta)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SCORE: 10")
	assert.Contains(t, lines[1], "██")
	assert.Equal(t, 10, lipgloss.Width(lines[1]))
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.Color(200)).Render("x"))
}
