package rulefile

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/restruct/pkg/errors"
	"github.com/arthur-debert/restruct/pkg/rules"
)

const usingPrefix = "using "

// Parse reads the line based grammar. The returned RuleSet carries the
// root exactly as written; Read resolves and validates it.
func Parse(r io.Reader) (*rules.RuleSet, error) {
	scanner := bufio.NewScanner(r)

	var (
		rs      *rules.RuleSet
		current string
		open    bool
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if rs == nil {
			if !strings.HasPrefix(line, usingPrefix) {
				return nil, errors.Newf(errors.ErrParse,
					"line %d: first line must be: using <path>", lineNo).
					WithDetail("line", lineNo)
			}
			root := strings.TrimSpace(line[len(usingPrefix):])
			if root == "" {
				return nil, errors.Newf(errors.ErrParse,
					"line %d: using declaration has no path", lineNo).
					WithDetail("line", lineNo)
			}
			rs = rules.NewRuleSet(root)
			continue
		}

		if strings.HasSuffix(line, ":") {
			current = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			open = true
			rs.AddSection(current)
			continue
		}

		if !open {
			return nil, errors.Newf(errors.ErrParse,
				"line %d: entry outside of a section: %q", lineNo, strings.TrimSpace(line)).
				WithDetail("line", lineNo)
		}
		rs.AddRule(current, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRead, "failed to read rule file")
	}

	if rs == nil {
		return nil, errors.New(errors.ErrParse, "first line must be: using <path>")
	}
	return rs, nil
}
