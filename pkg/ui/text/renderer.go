// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/restruct/pkg/core"
	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult prints one line per action followed by the totals
func (r *Renderer) RenderResult(result *core.Result) error {
	summary := display.FromResult(result)

	if _, err := fmt.Fprintf(r.output, "Restructured %s\n", summary.Root); err != nil {
		return err
	}
	for _, line := range summary.Lines {
		var err error
		if line.To == "" {
			_, err = fmt.Fprintf(r.output, "  %-8s %s\n", line.Action, line.From)
		} else {
			_, err = fmt.Fprintf(r.output, "  %-8s %s -> %s\n", line.Action, line.From, line.To)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.output, Totals(summary))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
		return werr
	}
	_, werr := fmt.Fprintf(r.output, "Error (%s): %v\n", errors.CategoryOf(code), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Totals formats the per action counts of a summary
func Totals(s *display.Summary) string {
	return fmt.Sprintf("%d moved, %d skipped, %d renamed, %d removed",
		s.Counts[display.ActionMoved],
		s.Counts[display.ActionSkipped],
		s.Counts[display.ActionRenamed],
		s.Counts[display.ActionRemoved])
}
