// Package fsutil holds the filesystem helpers used when materializing a
// scaffold: atomic file writes and existence checks.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default permission modes for created entries.
const (
	DefaultFileMode os.FileMode = 0o644
	DefaultDirMode  os.FileMode = 0o755
)

// WriteAtomic writes content to path through a temporary file in the same
// directory followed by a rename, so readers never observe a partial file.
// A zero mode means DefaultFileMode. On failure the temporary file is
// removed and any existing file at path is left as it was.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	done = true
	return nil
}

// Kind describes what, if anything, exists at a path.
type Kind int

const (
	Missing Kind = iota
	File
	Dir
	Other
)

// Stat reports the kind of entry at path without following a final symlink.
func Stat(path string) (Kind, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Missing, nil
	}
	if err != nil {
		return Missing, fmt.Errorf("stat %s: %w", path, err)
	}

	switch {
	case info.Mode().IsRegular():
		return File, nil
	case info.IsDir():
		return Dir, nil
	default:
		return Other, nil
	}
}

// EnsureDir creates path with mode if it does not exist. It reports whether
// the directory was created and fails when a non-directory is in the way.
func EnsureDir(path string, mode os.FileMode) (bool, error) {
	if mode == 0 {
		mode = DefaultDirMode
	}

	kind, err := Stat(path)
	if err != nil {
		return false, err
	}
	switch kind {
	case Dir:
		return false, nil
	case Missing:
	default:
		return false, fmt.Errorf("%s exists and is not a directory", path)
	}

	if err := os.Mkdir(path, mode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create directory %s: %w", path, err)
	}
	return true, nil
}
