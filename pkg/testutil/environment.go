// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Orchestrate test trees on memory or real filesystems

package testutil

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/restruct/pkg/filesystem"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a root directory ready for restructuring
type TestEnvironment struct {
	Root string
	FS   *filesystem.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates an empty root directory
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.Root = filepath.FromSlash("/tree")
		require.NoError(t, env.FS.MkdirAll(env.Root, 0755))
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		root, err := env.FS.Canonical(t.TempDir())
		require.NoError(t, err)
		env.Root = root
	}
	return env
}

// Path joins a slash separated relative path onto the root
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.Root, filepath.FromSlash(rel))
}

// WriteFiles creates files (and their parents) from relative path to content
func (e *TestEnvironment) WriteFiles(files map[string]string) {
	e.t.Helper()
	for rel, content := range files {
		path := e.Path(rel)
		require.NoError(e.t, e.FS.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(e.t, e.FS.WriteFile(path, []byte(content), 0644))
	}
}

// Mkdir creates directories below the root
func (e *TestEnvironment) Mkdir(rels ...string) {
	e.t.Helper()
	for _, rel := range rels {
		require.NoError(e.t, e.FS.MkdirAll(e.Path(rel), 0755))
	}
}

// Files lists every non-directory entry as sorted slash separated paths
func (e *TestEnvironment) Files() []string {
	e.t.Helper()
	files, _ := e.list()
	return files
}

// Dirs lists every directory below the root as sorted slash separated paths
func (e *TestEnvironment) Dirs() []string {
	e.t.Helper()
	_, dirs := e.list()
	return dirs
}

// Read returns the content of a file below the root
func (e *TestEnvironment) Read(rel string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(e.Path(rel))
	require.NoError(e.t, err)
	return string(data)
}

// Exists reports whether a path below the root exists
func (e *TestEnvironment) Exists(rel string) bool {
	e.t.Helper()
	ok, err := e.FS.Exists(e.Path(rel))
	require.NoError(e.t, err)
	return ok
}

func (e *TestEnvironment) list() (files, dirs []string) {
	var visit func(dir string)
	visit = func(dir string) {
		entries, err := e.FS.ReadDir(dir)
		require.NoError(e.t, err)
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			rel, err := filepath.Rel(e.Root, path)
			require.NoError(e.t, err)
			rel = filepath.ToSlash(rel)
			if entry.IsDir() {
				dirs = append(dirs, rel)
				visit(path)
				continue
			}
			files = append(files, rel)
		}
	}
	visit(e.Root)
	sort.Strings(files)
	sort.Strings(dirs)
	return files, dirs
}

// Abs converts slash separated relative paths to absolute ones, sorted
func (e *TestEnvironment) Abs(rels ...string) []string {
	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		out = append(out, e.Path(strings.TrimPrefix(rel, "/")))
	}
	sort.Strings(out)
	return out
}
