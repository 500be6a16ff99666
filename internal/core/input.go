package core

// Direction is the horizontal movement intent for the paddle.
// Input handlers only ever set a Direction; the next tick applies it.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Sign returns -1 for left, 1 for right and 0 otherwise.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// IntentFlags holds the two debounced movement flags of an input source.
// Left wins when both are held.
type IntentFlags struct {
	Left  bool
	Right bool
}

// Direction resolves the flags into a single intent.
func (f IntentFlags) Direction() Direction {
	switch {
	case f.Left:
		return DirLeft
	case f.Right:
		return DirRight
	default:
		return DirNone
	}
}
