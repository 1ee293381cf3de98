// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/restruct/pkg/core"
	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/ui/display"
	"github.com/arthur-debert/restruct/pkg/ui/text"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
	styles styles
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		styles: newStyles(w),
	}, nil
}

// RenderResult renders the run result with one styled line per action
func (r *Renderer) RenderResult(result *core.Result) error {
	summary := display.FromResult(result)
	s := r.styles

	var b strings.Builder
	b.WriteString(s.heading.Render("Restructured " + summary.Root))
	b.WriteString("\n")
	for _, line := range summary.Lines {
		b.WriteString("  ")
		b.WriteString(s.actions[line.Action].Render(string(line.Action)))
		b.WriteString(" ")
		b.WriteString(s.path.Render(line.From))
		if line.To != "" {
			b.WriteString(s.arrow.Render(" → "))
			b.WriteString(s.path.Render(line.To))
		}
		b.WriteString("\n")
	}
	if len(summary.Ignored) > 0 {
		b.WriteString(s.muted.Render("ignored sections: " + strings.Join(summary.Ignored, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(s.muted.Render(text.Totals(summary)))
	b.WriteString("\n")

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with its category when it carries one
func (r *Renderer) RenderError(err error) error {
	tag := "Error"
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		tag = string(errors.CategoryOf(code))
	}
	_, werr := fmt.Fprintf(r.output, "%s %v\n", r.styles.errTag.Render(tag+":"), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.muted.Render(msg))
	return err
}
