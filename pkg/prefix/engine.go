package prefix

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/filesystem"
	"github.com/arthur-debert/restruct/pkg/logging"
	"github.com/arthur-debert/restruct/pkg/paths"
	"github.com/arthur-debert/restruct/pkg/rules"
	"github.com/arthur-debert/restruct/pkg/snapshot"
	"github.com/rs/zerolog"
)

// Outcome of a single prefix move
type Outcome string

const (
	OutcomeMoved   Outcome = "moved"
	OutcomeSkipped Outcome = "skipped"
)

// Move records one file handled by the pass
type Move struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Order       string  `json:"order"`
	Rule        string  `json:"rule"`
	Outcome     Outcome `json:"outcome"`
}

// Result lists the moves of a pass in execution order. It is returned
// alongside an error too, holding the moves made before the abort.
type Result struct {
	Moves []Move `json:"moves"`
	// CatchAll is the catch-all order tag, empty when the rules have none
	CatchAll string `json:"catchAll,omitempty"`
}

// Moved counts files actually relocated
func (r *Result) Moved() int {
	return r.count(OutcomeMoved)
}

// Skipped counts files whose destination already existed
func (r *Result) Skipped() int {
	return r.count(OutcomeSkipped)
}

func (r *Result) count(o Outcome) int {
	n := 0
	for _, m := range r.Moves {
		if m.Outcome == o {
			n++
		}
	}
	return n
}

// Engine runs prefix passes over a filesystem
type Engine struct {
	fs      *filesystem.FS
	dirPerm fs.FileMode
	logger  zerolog.Logger
}

// New creates an engine creating directories with dirPerm
func New(fsys *filesystem.FS, dirPerm fs.FileMode) *Engine {
	return &Engine{
		fs:      fsys,
		dirPerm: dirPerm,
		logger:  logging.GetLogger("prefix"),
	}
}

// Resolve validates the rules, snapshots root and runs the pass.
// root must be canonical.
func (e *Engine) Resolve(root string, prefixRules []rules.PrefixRule) (*Result, error) {
	done := logging.LogOperationStart(e.logger, "prefix")
	defer done()

	if err := rules.ValidatePrefixRules(prefixRules); err != nil {
		return &Result{}, err
	}

	original, err := snapshot.Take(e.fs, root)
	if err != nil {
		return &Result{}, err
	}
	e.logger.Debug().
		Str("root", root).
		Int("files", original.Len()).
		Int("rules", len(prefixRules)).
		Msg("Snapshot taken")

	return e.ResolveWith(root, prefixRules, original, snapshot.NewSet())
}

// ResolveWith runs the pass against an injected snapshot and claimed set.
// claimed is updated in place.
func (e *Engine) ResolveWith(root string, prefixRules []rules.PrefixRule, original, claimed snapshot.Set) (*Result, error) {
	result := &Result{}
	var catchAll *rules.PrefixRule

	for i := range prefixRules {
		rule := prefixRules[i]

		if rule.IsCatchAll() {
			if catchAll != nil {
				return result, errors.Newf(errors.ErrDuplicateCatchAll,
					"multiple catch-all (N .) entries: %q and %q", catchAll.Line, rule.Line).
					WithDetail("first", catchAll.Line).
					WithDetail("second", rule.Line)
			}
			catchAll = &prefixRules[i]
			result.CatchAll = rule.Order
			continue
		}

		path, err := targetPath(root, rule)
		if err != nil {
			return result, err
		}
		target, err := e.locate(root, path, rule)
		if err != nil {
			return result, err
		}

		candidates, err := snapshot.Files(e.fs, target)
		if err != nil {
			return result, err
		}

		for _, file := range candidates {
			if !claimed.Add(file) {
				e.logger.Trace().
					Str("file", file).
					Str("rule", rule.Line).
					Msg("Already claimed by an earlier rule")
				continue
			}
			if err := e.apply(root, file, rule, result); err != nil {
				return result, err
			}
		}
	}

	if catchAll != nil {
		rest := original.Difference(claimed)
		e.logger.Debug().
			Str("order", catchAll.Order).
			Int("files", len(rest)).
			Msg("Applying catch-all")
		for _, file := range rest {
			claimed.Add(file)
			if err := e.apply(root, file, *catchAll, result); err != nil {
				return result, err
			}
		}
	}

	e.logger.Info().
		Int("moved", result.Moved()).
		Int("skipped", result.Skipped()).
		Msg("Prefix pass complete")

	return result, nil
}

// targetPath joins a rule target onto root without touching the filesystem
func targetPath(root string, rule rules.PrefixRule) (string, error) {
	path := filepath.Clean(rule.Target)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	if !paths.IsStrictlyBelow(root, path) {
		return "", outsideRoot(root, path, rule)
	}
	return path, nil
}

// locate checks that path exists and returns its canonical form. Parent
// directories are canonicalised; the final component is not followed so a
// symlink stays an opaque entry.
func (e *Engine) locate(root, path string, rule rules.PrefixRule) (string, error) {
	exists, err := e.fs.Exists(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRead, "cannot access %s", path)
	}
	if !exists {
		return "", errors.Newf(errors.ErrMissingTarget,
			"missing path in prefix rule %q: %s", rule.Line, rule.Target).
			WithDetail("rule", rule.Line).
			WithDetail("path", path)
	}

	parent, err := e.fs.Canonical(filepath.Dir(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRead, "cannot resolve %s", path)
	}
	path = filepath.Join(parent, filepath.Base(path))
	if !paths.IsStrictlyBelow(root, path) {
		return "", outsideRoot(root, path, rule)
	}
	return path, nil
}

func outsideRoot(root, path string, rule rules.PrefixRule) error {
	return errors.Newf(errors.ErrOutsideRoot,
		"prefix rule %q points outside of %s", rule.Line, root).
		WithDetail("rule", rule.Line).
		WithDetail("path", path)
}

func (e *Engine) apply(root, file string, rule rules.PrefixRule, result *Result) error {
	dest, err := Destination(root, file, rule.Order)
	if err != nil {
		return err
	}
	move := Move{Source: file, Destination: dest, Order: rule.Order, Rule: rule.Line}

	exists, err := e.fs.Exists(dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRead, "cannot check destination %s", dest)
	}
	if exists {
		move.Outcome = OutcomeSkipped
		result.Moves = append(result.Moves, move)
		e.logger.Info().
			Str("source", file).
			Str("destination", dest).
			Msg("Destination exists, skipping")
		return nil
	}

	if err := e.fs.MkdirAll(filepath.Dir(dest), e.dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrMkdir, "cannot create %s", filepath.Dir(dest)).
			WithDetail("rule", rule.Line)
	}
	if err := e.fs.Move(file, dest); err != nil {
		return errors.Wrapf(err, errors.ErrMove, "cannot move %s to %s", file, dest).
			WithDetail("rule", rule.Line)
	}

	move.Outcome = OutcomeMoved
	result.Moves = append(result.Moves, move)
	e.logger.Debug().
		Str("source", file).
		Str("destination", dest).
		Str("order", rule.Order).
		Msg("Moved")
	return nil
}

// Destination maps root/<top>/<rest> to root/<order>_<top>/<rest>
func Destination(root, file, order string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil || !paths.IsStrictlyBelow(root, file) {
		return "", errors.Newf(errors.ErrOutsideRoot, "%s is not below %s", file, root).
			WithDetail("path", file)
	}

	top, rest, _ := strings.Cut(rel, string(filepath.Separator))
	dest := filepath.Join(root, order+"_"+top)
	if rest != "" {
		dest = filepath.Join(dest, rest)
	}
	return dest, nil
}
