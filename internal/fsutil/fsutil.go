// Package fsutil contains filesystem helpers shared by the codecs.
package fsutil

import (
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

func createTemp(path string, perm fs.FileMode) (*os.File, error) {
	dir, base := filepath.Split(path)
	for i := 0; i < 10000; i++ {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(uint64(rand.Uint32()), 10))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if os.IsExist(err) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: path, Err: fs.ErrExist}
}

// WriteFile calls fn with a temporary file created alongside path and
// renames it to path once fn and the close have succeeded. On any failure
// the temporary file is removed and path is left untouched. A new file gets
// the same permissions os.Create would give it; a replaced file keeps its
// permissions.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	perm, keep := fs.FileMode(0o666), false
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		perm, keep = info.Mode().Perm(), true
	}

	f, err := createTemp(path, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = fn(f); err != nil {
		return &fs.PathError{Op: "write", Path: path, Err: err}
	}

	if err = f.Close(); err != nil {
		return &fs.PathError{Op: "close", Path: path, Err: err}
	}

	if keep {
		// The umask applied on create may have dropped bits
		if err = os.Chmod(f.Name(), perm); err != nil {
			return err
		}
	}

	return os.Rename(f.Name(), path)
}

// MkdirAll is os.MkdirAll but fails with a *fs.PathError wrapping
// fs.ErrExist when path exists and is not a directory.
func MkdirAll(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	case err == nil:
		return nil
	case !os.IsNotExist(err):
		return err
	}
	return os.MkdirAll(path, 0o755)
}
