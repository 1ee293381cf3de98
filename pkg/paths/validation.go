package paths

import (
	"path/filepath"
	"strings"
)

// ContainsPath reports whether child is parent or lies below it.
// Both paths must be absolute; they are compared lexically.
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// IsStrictlyBelow reports whether child lies below parent and is not
// parent itself
func IsStrictlyBelow(parent, child string) bool {
	return ContainsPath(parent, child) && filepath.Clean(parent) != filepath.Clean(child)
}

// PathDepth returns the depth of a path (number of directories).
// For example: "/" = 0, "/a" = 1, "/a/b" = 2
func PathDepth(path string) int {
	cleaned := filepath.Clean(path)
	volume := filepath.VolumeName(cleaned)
	if cleaned == volume || cleaned == volume+string(filepath.Separator) {
		return 0
	}

	depth := strings.Count(cleaned, string(filepath.Separator))
	if !filepath.IsAbs(cleaned) {
		depth++
	}
	return depth
}
