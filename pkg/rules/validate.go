package rules

import (
	"io/fs"

	"github.com/arthur-debert/restruct/pkg/errors"
)

// ValidatePrefixRules checks the structural invariants that must hold
// before any prefix move runs: at most one catch-all rule.
func ValidatePrefixRules(rules []PrefixRule) error {
	var first *PrefixRule
	for i := range rules {
		if !rules[i].IsCatchAll() {
			continue
		}
		if first != nil {
			return errors.Newf(errors.ErrDuplicateCatchAll,
				"multiple catch-all (N .) entries: %q and %q", first.Line, rules[i].Line).
				WithDetail("first", first.Line).
				WithDetail("second", rules[i].Line)
		}
		first = &rules[i]
	}
	return nil
}

// Statter is the part of a filesystem Validate needs
type Statter interface {
	Stat(name string) (fs.FileInfo, error)
}

// Validate checks that the root exists and is a directory
func (rs *RuleSet) Validate(fsys Statter) error {
	if rs.Root == "" {
		return errors.New(errors.ErrInvalidRoot, "rule set has no root")
	}
	info, err := fsys.Stat(rs.Root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidRoot, "invalid root path: %s", rs.Root).
			WithDetail("root", rs.Root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidRoot, "invalid root path: %s is not a directory", rs.Root).
			WithDetail("root", rs.Root)
	}
	return nil
}
