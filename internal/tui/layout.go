package tui

// Layout constants
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	MinWidth      = 40
	FormMaxWidth  = 72
)

// Layout holds layout calculations for the current terminal size.
type Layout struct {
	Width  int
	Height int

	FormWidth int
	CueHeight int
}

// NewLayout creates a new layout for the given terminal size.
func NewLayout(width, height int) Layout {
	if width < MinWidth {
		width = MinWidth
	}
	if height < 3 {
		height = 3
	}
	l := Layout{Width: width, Height: height}

	// Form: panel border and padding take 6 columns.
	l.FormWidth = width - 6
	if l.FormWidth > FormMaxWidth {
		l.FormWidth = FormMaxWidth
	}

	// Running screen: everything but the footer line.
	l.CueHeight = height - 1
	return l
}
