package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Move relocates src to dst. A same-filesystem rename is tried first; when
// the rename crosses devices the entry is copied and the source removed.
// dst must not exist and its parent must already be present.
func (f *FS) Move(src, dst string) error {
	err := f.rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := f.copyTree(src, dst); err != nil {
		_ = f.fs.RemoveAll(dst)
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return f.fs.RemoveAll(src)
}

func (f *FS) copyTree(src, dst string) error {
	info, err := f.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := f.Readlink(src)
		if err != nil {
			return err
		}
		return f.Symlink(target, dst)
	case info.IsDir():
		if err := f.fs.Mkdir(dst, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := f.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := f.copyTree(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	default:
		return f.copyFile(src, dst, info.Mode().Perm())
	}
}

func (f *FS) copyFile(src, dst string, perm fs.FileMode) error {
	in, err := f.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
