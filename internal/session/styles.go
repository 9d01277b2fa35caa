package session

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors
var (
	destructive = lipgloss.Color("#e53935") // Red
	success     = lipgloss.Color("#8BC34A") // Lime Green
	info        = lipgloss.Color("#2196F3") // Blue
)

// styles renders replies for one output stream. When the stream is not a
// terminal the renderer's profile has no colors and text is left untouched.
type styles struct {
	banner lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		banner: r.NewStyle().Foreground(info),
		ok:     r.NewStyle().Foreground(success),
		err:    r.NewStyle().Foreground(destructive),
	}
}
