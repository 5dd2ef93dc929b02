package spinner

import bspinner "github.com/charmbracelet/bubbles/spinner"

// FrameSet selects the animation glyphs and their tick interval.
type FrameSet int

const (
	// Dot is the default braille dot animation (~10 fps).
	Dot FrameSet = iota
	// Line is the classic |/-\ animation.
	Line
	// MiniDot is a compact braille animation.
	MiniDot
	// Points is a three-dot pulse animation.
	Points
)

func (f FrameSet) frames() bspinner.Spinner {
	switch f {
	case Line:
		return bspinner.Line
	case MiniDot:
		return bspinner.MiniDot
	case Points:
		return bspinner.Points
	default:
		return bspinner.Dot
	}
}
