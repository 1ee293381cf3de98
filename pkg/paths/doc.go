// Package paths provides centralized path handling for restruct.
// It locates the user config and log files following the XDG Base
// Directory specification and holds the path predicates shared by the
// engines.
package paths
