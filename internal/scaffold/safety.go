package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsafePath is returned for entry paths that could escape the
	// destination directory.
	ErrUnsafePath = errors.New("unsafe path")
	// ErrConflict is returned when the destination holds an entry of the
	// wrong type, such as a directory where a file should be written.
	ErrConflict = errors.New("path conflict")
)

// ValidatePath checks that p is a relative, slash-separated path whose
// segments are all usable names.
func ValidatePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafePath)
	}
	if strings.HasPrefix(p, "/") || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return fmt.Errorf("%w: absolute path %q", ErrUnsafePath, p)
	}
	for _, seg := range strings.Split(p, "/") {
		if err := validateSegment(seg); err != nil {
			return fmt.Errorf("%w: %q: %s", ErrUnsafePath, p, err)
		}
	}
	return nil
}

func validateSegment(seg string) error {
	switch {
	case seg == "":
		return errors.New("empty segment")
	case seg == "." || seg == "..":
		return fmt.Errorf("segment %q not allowed", seg)
	case strings.Contains(seg, `\`):
		return errors.New("backslash in name")
	case strings.ContainsRune(seg, 0):
		return errors.New("NUL in name")
	}
	return nil
}

// SafeJoin joins the slash-separated rel onto root and verifies that the
// result stays inside root.
func SafeJoin(root, rel string) (string, error) {
	cleanRoot := filepath.Clean(root)
	joined := filepath.Join(cleanRoot, filepath.FromSlash(rel))

	r, err := filepath.Rel(cleanRoot, joined)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, err)
	}
	r = filepath.ToSlash(r)
	if r == ".." || strings.HasPrefix(r, "../") {
		return "", fmt.Errorf("%w: %q leaves %s", ErrUnsafePath, rel, root)
	}
	return joined, nil
}
