package breakout

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// Minimum terminal size the board is drawn at.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// Overlay is the message box drawn over the board. An empty Title draws
// nothing.
type Overlay struct {
	Title string
	Hint  string
}

// Render draws a snapshot onto dst: a one-row HUD, then the board scaled
// to fit inside a border, then the overlay.
func Render(dst *core.Screen, snap Snapshot, overlay Overlay) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	renderHUD(dst, snap)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(field)
	v := newViewport(field, snap.BoardWidth, snap.BoardHeight)

	for _, b := range snap.Bricks {
		if !b.Alive {
			continue
		}
		x0, y0 := v.cell(b.X, b.Y)
		x1, _ := v.cell(b.X+b.Width, b.Y)
		// Leave the right edge cell empty so neighbours stay apart.
		for x := x0; x < x1 || x == x0; x++ {
			dst.SetColored(x, y0, BrickChar, b.Color)
		}
	}

	p := snap.Paddle
	px0, py := v.cell(p.X, p.Y)
	px1, _ := v.cell(p.X+p.Width, p.Y)
	for x := px0; x <= px1; x++ {
		dst.SetColored(x, py, PaddleChar, p.Color)
	}

	bx, by := v.cell(snap.Ball.X, snap.Ball.Y)
	dst.SetColored(bx, by, BallChar, snap.Ball.Color)

	if overlay.Title != "" {
		renderOverlay(dst, overlay.Title, overlay.Hint)
	}
}

// renderHUD draws the score and run state.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE: %d", snap.Score), core.ColorBrightWhite)

	status := snap.Phase.String()
	if snap.Phase == PhaseEnded && snap.Outcome != OutcomeNone {
		status = snap.Outcome.String()
	}
	status = fmt.Sprintf("%d/%d  %s", snap.Alive, len(snap.Bricks), status)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(status)-1, 0, status)
}

// renderOverlay draws a centered box with one or two lines of text.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := min(maxLen+4, w)
	boxH := 5
	if line2 == "" {
		boxH = 3
	}
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	if line2 != "" {
		dst.DrawTextCentered(box.Y+3, line2)
	}
}

// viewport maps board coordinates to cells inside a bordered area.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

func newViewport(area core.Rect, boardW, boardH float64) viewport {
	inner := area.Inset(1)
	v := viewport{x0: inner.X, y0: inner.Y, w: inner.W, h: inner.H}
	v.sx = float64(v.w) / boardW
	v.sy = float64(v.h) / boardH
	return v
}

// cell converts a board point to a screen cell clamped to the area.
func (v viewport) cell(x, y float64) (int, int) {
	cx := core.Clamp(int(math.Floor(x*v.sx)), 0, v.w-1)
	cy := core.Clamp(int(math.Floor(y*v.sy)), 0, v.h-1)
	return v.x0 + cx, v.y0 + cy
}
