package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Adaptive colors for light and dark terminals
var (
	colorKey   = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}
	colorValue = lipgloss.AdaptiveColor{Light: "#303030", Dark: "#D0D0D0"}
	colorMuted = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
)

// Styles are the semantic styles used by the renderer
type Styles struct {
	Key   lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Code  lipgloss.Style
}

// NewStyles builds styles bound to w. With noColor every style renders
// plain text.
func NewStyles(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Key:   r.NewStyle().Bold(true).Foreground(colorKey),
		Value: r.NewStyle().Foreground(colorValue),
		Muted: r.NewStyle().Foreground(colorMuted),
		Error: r.NewStyle().Bold(true).Foreground(colorError),
		Code:  r.NewStyle().Foreground(colorMuted),
	}
}
