package paint

import "image/color"

// Brush radius bounds.
const (
	MinRadius = 1
	MaxRadius = 200
)

// Mode selects between painting and erasing strokes.
type Mode int

const (
	ModeDraw Mode = iota
	ModeErase
)

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Brush holds the current stroke parameters. Radius is kept within
// [MinRadius, MaxRadius].
type Brush struct {
	Radius int
	Color  color.RGBA
	Mode   Mode
}

// NewBrush returns a draw-mode brush with the given radius and color.
func NewBrush(radius int, col color.RGBA) *Brush {
	b := &Brush{Radius: radius, Color: col, Mode: ModeDraw}
	b.clamp()
	return b
}

// Grow increases the radius by one step.
func (b *Brush) Grow() {
	b.Radius++
	b.clamp()
}

// Shrink decreases the radius by one step.
func (b *Brush) Shrink() {
	b.Radius--
	b.clamp()
}

func (b *Brush) clamp() {
	if b.Radius < MinRadius {
		b.Radius = MinRadius
	}
	if b.Radius > MaxRadius {
		b.Radius = MaxRadius
	}
}
