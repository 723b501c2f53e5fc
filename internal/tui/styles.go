package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Palette holds the styles used for console output, bound to the writer
// they render for so colour detection follows that stream.
type Palette struct {
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewPalette creates styles rendering for w.
func NewPalette(w io.Writer) Palette {
	r := lipgloss.NewRenderer(w)
	return Palette{
		Warning: r.NewStyle().Foreground(ColorWarning).Bold(true),
		Error:   r.NewStyle().Foreground(ColorError).Bold(true),
		Muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// SymbolArrowRight separates old and new values in summaries.
const SymbolArrowRight = "→"
