// Package display turns a run result into the root relative lines shown
// by the text and terminal renderers.
package display

import (
	"path/filepath"

	"github.com/arthur-debert/restruct/pkg/core"
	"github.com/arthur-debert/restruct/pkg/prefix"
)

// Action labels a summary line
type Action string

const (
	ActionMoved   Action = "moved"
	ActionSkipped Action = "skipped"
	ActionRenamed Action = "renamed"
	ActionRemoved Action = "removed"
)

// Line is one entry of the summary. To is empty for removals.
type Line struct {
	Action Action
	From   string
	To     string
}

// Summary is a run result with paths relative to the root
type Summary struct {
	Root    string
	Lines   []Line
	Ignored []string
	Counts  map[Action]int
}

// FromResult builds a summary. Moves come first, then renames, then
// removed directories, each in execution order.
func FromResult(result *core.Result) *Summary {
	s := &Summary{
		Root:    result.Root,
		Ignored: result.Ignored,
		Counts:  make(map[Action]int),
	}

	if result.Prefix != nil {
		for _, m := range result.Prefix.Moves {
			action := ActionMoved
			if m.Outcome == prefix.OutcomeSkipped {
				action = ActionSkipped
			}
			s.add(Line{Action: action, From: s.rel(m.Source), To: s.rel(m.Destination)})
		}
	}
	if result.Rename != nil {
		for _, r := range result.Rename.Renames {
			s.add(Line{Action: ActionRenamed, From: s.rel(r.Source), To: s.rel(r.Destination)})
		}
	}
	for _, dir := range result.Removed {
		s.add(Line{Action: ActionRemoved, From: s.rel(dir) + "/"})
	}
	return s
}

func (s *Summary) add(line Line) {
	s.Lines = append(s.Lines, line)
	s.Counts[line.Action]++
}

func (s *Summary) rel(path string) string {
	rel, err := filepath.Rel(s.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
