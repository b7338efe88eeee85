package presenter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tturner/scandrill/internal/drill"
)

var swatches = map[drill.Color]lipgloss.Color{
	drill.Red:     lipgloss.Color("#e53935"),
	drill.Blue:    lipgloss.Color("#1e88e5"),
	drill.Yellow:  lipgloss.Color("#fdd835"),
	drill.Green:   lipgloss.Color("#43a047"),
	drill.Orange:  lipgloss.Color("#fb8c00"),
	drill.Neutral: lipgloss.Color("#000000"),
}

// Swatch returns the screen color for a cue color.
func Swatch(c drill.Color) lipgloss.Color {
	if s, ok := swatches[c]; ok {
		return s
	}
	return swatches[drill.Neutral]
}

// Ink returns a readable text color on top of Swatch(c).
func Ink(c drill.Color) lipgloss.Color {
	switch c {
	case drill.Yellow, drill.Orange:
		return lipgloss.Color("#000000")
	default:
		return lipgloss.Color("#ffffff")
	}
}
