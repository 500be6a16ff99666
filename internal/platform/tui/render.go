package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/core"
)

var plainStyle = lipgloss.NewStyle()

// colorStyles caches one lipgloss style per palette color.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if code := c.ANSI(); code != "" {
			styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return plainStyle
}

// RenderScreen turns the cell buffer into terminal output, one styled
// string per color run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range s.Runs(y) {
			sb.WriteString(styleFor(run.Color).Render(run.Text))
		}
	}
	return sb.String()
}
