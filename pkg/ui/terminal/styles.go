package terminal

import (
	"io"

	"github.com/arthur-debert/restruct/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#00875F", Dark: "#5FD787"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

// styles are bound to the lipgloss renderer of one writer, so the colour
// profile follows that writer rather than stdout
type styles struct {
	heading lipgloss.Style
	path    lipgloss.Style
	arrow   lipgloss.Style
	muted   lipgloss.Style
	errTag  lipgloss.Style
	actions map[display.Action]lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Width(8).Bold(true)
	return styles{
		heading: r.NewStyle().Bold(true).MarginBottom(1),
		path:    r.NewStyle(),
		arrow:   r.NewStyle().Foreground(colorMuted),
		muted:   r.NewStyle().Foreground(colorMuted).Italic(true),
		errTag:  r.NewStyle().Bold(true).Foreground(colorError),
		actions: map[display.Action]lipgloss.Style{
			display.ActionMoved:   label.Foreground(colorSuccess),
			display.ActionSkipped: label.Foreground(colorWarning),
			display.ActionRenamed: label.Foreground(colorInfo),
			display.ActionRemoved: label.Foreground(colorMuted),
		},
	}
}
