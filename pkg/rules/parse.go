package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/restruct/pkg/errors"
)

// splitRule splits a line at the first run of whitespace. The remainder is
// kept verbatim apart from surrounding blanks, so paths may contain spaces.
func splitRule(line string) (string, string, bool) {
	fields := strings.TrimSpace(line)
	i := strings.IndexFunc(fields, isSpace)
	if i < 0 {
		return "", "", false
	}
	rest := strings.TrimSpace(fields[i:])
	if rest == "" {
		return "", "", false
	}
	return fields[:i], rest, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// ParsePrefixRule parses "<order> <target>"
func ParsePrefixRule(line string) (PrefixRule, error) {
	order, target, ok := splitRule(line)
	if !ok {
		return PrefixRule{}, errors.Newf(errors.ErrParse,
			"prefix rule must be \"<order> <path>\": %q", line).
			WithDetail("rule", line)
	}
	if target != CatchAll {
		target = filepath.Clean(filepath.FromSlash(target))
		if target == CatchAll {
			return PrefixRule{}, errors.Newf(errors.ErrParse,
				"prefix rule %q targets the root itself; use \".\" for the catch-all", line).
				WithDetail("rule", line)
		}
	}
	return PrefixRule{Order: order, Target: target, Line: strings.TrimSpace(line)}, nil
}

// ParseRenameRule parses "<source> <destination>"
func ParseRenameRule(line string) (RenameRule, error) {
	src, dst, ok := splitRule(line)
	if !ok {
		return RenameRule{}, errors.Newf(errors.ErrParse,
			"rename rule must be \"<source> <destination>\": %q", line).
			WithDetail("rule", line)
	}
	return RenameRule{
		Source:      filepath.Clean(filepath.FromSlash(src)),
		Destination: filepath.Clean(filepath.FromSlash(dst)),
		Line:        strings.TrimSpace(line),
	}, nil
}

// ParsePrefixRules parses a whole prefix section
func ParsePrefixRules(lines []string) ([]PrefixRule, error) {
	parsed := make([]PrefixRule, 0, len(lines))
	for _, line := range lines {
		rule, err := ParsePrefixRule(line)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, rule)
	}
	return parsed, nil
}

// ParseRenameRules parses a whole rename section
func ParseRenameRules(lines []string) ([]RenameRule, error) {
	parsed := make([]RenameRule, 0, len(lines))
	for _, line := range lines {
		rule, err := ParseRenameRule(line)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, rule)
	}
	return parsed, nil
}
