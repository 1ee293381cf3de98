package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the filesystem used by every restruct pass
type FS struct {
	fs     afero.Fs
	isOS   bool
	rename func(oldpath, newpath string) error
}

// NewOS creates an FS backed by the operating system
func NewOS() *FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory creates an in-memory FS
func NewMemory() *FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(afs afero.Fs) *FS {
	f := &FS{fs: afs}
	_, f.isOS = afs.(*afero.OsFs)
	f.rename = afs.Rename
	return f
}

func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.fs.Stat(name)
}

// Lstat does not follow a final symlink when the backend supports it
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	if l, ok := f.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return f.fs.Stat(name)
}

// Exists reports whether name is present, counting dangling symlinks
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.Lstat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(f.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

func (f *FS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(f.fs, name)
}

func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(f.fs, name, data, perm)
}

func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.fs.MkdirAll(path, perm)
}

func (f *FS) Remove(name string) error {
	return f.fs.Remove(name)
}

func (f *FS) RemoveAll(path string) error {
	return f.fs.RemoveAll(path)
}

func (f *FS) Symlink(oldname, newname string) error {
	if l, ok := f.fs.(afero.Linker); ok {
		return l.SymlinkIfPossible(oldname, newname)
	}
	return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}

func (f *FS) Readlink(name string) (string, error) {
	if l, ok := f.fs.(afero.LinkReader); ok {
		return l.ReadlinkIfPossible(name)
	}
	return "", &os.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

// Canonical returns the absolute, cleaned form of path. On the OS backend
// symlinks in the path are evaluated as well.
func (f *FS) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if !f.isOS {
		return abs, nil
	}
	return filepath.EvalSymlinks(abs)
}
