// Package rename applies exact source to destination relocations after the
// prefix pass. Unlike prefix moves, an existing destination is an error.
package rename

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/filesystem"
	"github.com/arthur-debert/restruct/pkg/logging"
	"github.com/arthur-debert/restruct/pkg/paths"
	"github.com/arthur-debert/restruct/pkg/rules"
	"github.com/rs/zerolog"
)

// Rename records one applied rule
type Rename struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Rule        string `json:"rule"`
}

// Result lists the renames performed, in rule order
type Result struct {
	Renames []Rename `json:"renames"`
}

// Engine applies rename rules
type Engine struct {
	fs      *filesystem.FS
	dirPerm fs.FileMode
	logger  zerolog.Logger
}

// New creates an engine creating parent directories with dirPerm
func New(fsys *filesystem.FS, dirPerm fs.FileMode) *Engine {
	return &Engine{
		fs:      fsys,
		dirPerm: dirPerm,
		logger:  logging.GetLogger("rename"),
	}
}

// Resolve applies renameRules in order. Renames done before a failing rule
// are kept.
func (e *Engine) Resolve(root string, renameRules []rules.RenameRule) (*Result, error) {
	done := logging.LogOperationStart(e.logger, "rename")
	defer done()

	result := &Result{}
	for _, rule := range renameRules {
		src, err := resolve(root, rule.Source, rule)
		if err != nil {
			return result, err
		}
		dst, err := resolve(root, rule.Destination, rule)
		if err != nil {
			return result, err
		}

		srcExists, err := e.fs.Exists(src)
		if err != nil {
			return result, errors.Wrapf(err, errors.ErrRead, "cannot access %s", src)
		}
		if !srcExists {
			return result, errors.Newf(errors.ErrRenameSourceMissing,
				"rename source missing: %s", rule.Source).
				WithDetail("rule", rule.Line).
				WithDetail("path", src)
		}

		dstExists, err := e.fs.Exists(dst)
		if err != nil {
			return result, errors.Wrapf(err, errors.ErrRead, "cannot access %s", dst)
		}
		if dstExists {
			return result, errors.Newf(errors.ErrRenameDestinationExists,
				"rename destination exists: %s", rule.Destination).
				WithDetail("rule", rule.Line).
				WithDetail("path", dst)
		}

		if paths.ContainsPath(src, dst) {
			return result, errors.Newf(errors.ErrOutsideRoot,
				"cannot rename %s into itself: %s", rule.Source, rule.Destination).
				WithDetail("rule", rule.Line)
		}

		if err := e.fs.MkdirAll(filepath.Dir(dst), e.dirPerm); err != nil {
			return result, errors.Wrapf(err, errors.ErrMkdir, "cannot create %s", filepath.Dir(dst)).
				WithDetail("rule", rule.Line)
		}
		if err := e.fs.Move(src, dst); err != nil {
			return result, errors.Wrapf(err, errors.ErrMove, "cannot rename %s to %s", rule.Source, rule.Destination).
				WithDetail("rule", rule.Line)
		}

		result.Renames = append(result.Renames, Rename{Source: src, Destination: dst, Rule: rule.Line})
		e.logger.Debug().
			Str("source", src).
			Str("destination", dst).
			Msg("Renamed")
	}

	e.logger.Info().Int("renamed", len(result.Renames)).Msg("Rename pass complete")
	return result, nil
}

func resolve(root, rel string, rule rules.RenameRule) (string, error) {
	path := filepath.Clean(rel)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	if !paths.IsStrictlyBelow(root, path) {
		return "", errors.Newf(errors.ErrOutsideRoot,
			"rename rule %q points outside of %s", rule.Line, root).
			WithDetail("rule", rule.Line).
			WithDetail("path", path)
	}
	return path, nil
}
