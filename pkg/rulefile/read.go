package rulefile

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/filesystem"
	"github.com/arthur-debert/restruct/pkg/logging"
	"github.com/arthur-debert/restruct/pkg/paths"
	"github.com/arthur-debert/restruct/pkg/rules"
)

// Read loads the rule file at path, picks a parser from its extension and
// resolves the root to its canonical form. A relative root is taken from
// the current working directory.
func Read(fsys *filesystem.FS, path string) (*rules.RuleSet, error) {
	logger := logging.GetLogger("rulefile")

	exists, err := fsys.Exists(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRead, "cannot access rule file %s", path)
	}
	if !exists {
		return nil, errors.Newf(errors.ErrRuleFileNotFound, "rule file not found: %s", path).
			WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRead, "cannot read rule file %s", path)
	}

	var rs *rules.RuleSet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		rs, err = ParseTOML(data)
	case ".yaml", ".yml":
		rs, err = ParseYAML(data)
	default:
		rs, err = Parse(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	if err := ResolveRoot(fsys, rs); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("root", rs.Root).
		Strs("sections", rs.Order).
		Msg("Rule file loaded")

	return rs, nil
}

// ResolveRoot replaces rs.Root with its canonical absolute form and checks
// that it is an existing directory. A leading ~ is expanded.
func ResolveRoot(fsys *filesystem.FS, rs *rules.RuleSet) error {
	rs.Root = paths.ExpandHome(rs.Root)
	raw := rs.Root
	if err := rs.Validate(fsys); err != nil {
		return err
	}
	root, err := fsys.Canonical(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidRoot, "invalid root path: %s", raw).
			WithDetail("root", raw)
	}
	rs.Root = root
	return nil
}
