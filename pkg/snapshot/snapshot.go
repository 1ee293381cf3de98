// Package snapshot enumerates the files of a tree before any move runs.
//
// Every non-directory entry counts as a file, symlinks included; links are
// never followed, so a link to a directory is one opaque entry. Paths are
// built by joining names onto the canonical root, which keeps set
// membership stable however a path was spelled by a rule.
package snapshot

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/restruct/pkg/errors"
)

// Lister is the part of a filesystem the snapshot needs
type Lister interface {
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Set is a set of canonical absolute paths
type Set map[string]struct{}

// NewSet creates a set holding paths
func NewSet(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts path and reports whether it was absent
func (s Set) Add(path string) bool {
	if _, ok := s[path]; ok {
		return false
	}
	s[path] = struct{}{}
	return true
}

// Has reports whether path is in the set
func (s Set) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the paths in lexical order
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Difference returns the paths of s that are not in other, sorted
func (s Set) Difference(other Set) []string {
	var out []string
	for p := range s {
		if !other.Has(p) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Take returns every file under root. root must already be canonical.
func Take(fsys Lister, root string) (Set, error) {
	files, err := Files(fsys, root)
	if err != nil {
		return nil, err
	}
	return NewSet(files...), nil
}

// Files resolves path to the files it stands for: a file yields itself, a
// directory yields every file below it in lexical order.
func Files(fsys Lister, path string) ([]string, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRead, "cannot stat %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	if err := walk(fsys, path, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func walk(fsys Lister, dir string, files *[]string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRead, "cannot list %s", dir)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := walk(fsys, path, files); err != nil {
				return err
			}
			continue
		}
		*files = append(*files, path)
	}
	return nil
}

// Directories returns every directory strictly below root
func Directories(fsys Lister, root string) ([]string, error) {
	var dirs []string
	var visit func(dir string) error
	visit = func(dir string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrRead, "cannot list %s", dir)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			dirs = append(dirs, path)
			if err := visit(path); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return dirs, nil
}
