// Package scaffold materializes parsed file entries on disk. It validates
// every path before touching the filesystem, filters entries through
// gitignore-style patterns, creates parent directories shallowest first and
// writes files atomically.
package scaffold

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/holonoms/treescaffold/internal/fsutil"
	"github.com/holonoms/treescaffold/internal/logging"
	"github.com/holonoms/treescaffold/internal/pathplan"
	"github.com/holonoms/treescaffold/internal/treetext"
)

// IgnoreFileName is looked up in the destination when no ignore file is given.
const IgnoreFileName = ".treescaffoldignore"

// defaultIgnores keeps generated layouts out of places a scaffold should
// never write to.
const defaultIgnores = `
.git/
.hg/
.svn/
.DS_Store
Thumbs.db
`

// Options controls how entries are written.
type Options struct {
	// DryRun reports what would be done without touching the filesystem.
	DryRun bool
	// Force overwrites files that already exist.
	Force bool
	// DirMode and FileMode default to fsutil.DefaultDirMode and
	// fsutil.DefaultFileMode.
	DirMode  os.FileMode
	FileMode os.FileMode
	// Executable lists glob patterns of files written with mode 0755.
	// Patterns without a slash match the base name.
	Executable []string
	// IgnoreFile is a gitignore-style file of paths to skip. When empty,
	// IgnoreFileName in the destination is used if present.
	IgnoreFile string
	// Ignore holds extra gitignore-style patterns.
	Ignore []string
	// Logger receives progress messages. When nil the logger stored in the
	// context passed to Apply is used.
	Logger *log.Logger
}

// Report summarizes an Apply call. Paths are relative and slash-separated.
type Report struct {
	Directories []string `json:"directories" yaml:"directories"`
	Written     []string `json:"written" yaml:"written"`
	Skipped     []string `json:"skipped" yaml:"skipped"`
	Ignored     []string `json:"ignored" yaml:"ignored"`
	Bytes       int64    `json:"bytes" yaml:"bytes"`
	DryRun      bool     `json:"dry_run" yaml:"dry_run"`
}

// Scaffolder writes file entries below a destination directory.
type Scaffolder struct {
	destDir    string
	opts       Options
	ignoreFile string
	matcher    gitignore.Matcher
}

// New creates a Scaffolder rooted at destDir.
func New(destDir string, opts Options) (*Scaffolder, error) {
	if destDir == "" {
		destDir = "."
	}
	destDir = filepath.Clean(destDir)

	if opts.DirMode == 0 {
		opts.DirMode = fsutil.DefaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = fsutil.DefaultFileMode
	}

	s := &Scaffolder{
		destDir:    destDir,
		opts:       opts,
		ignoreFile: opts.IgnoreFile,
	}

	patterns := parsePatterns(defaultIgnores)

	if s.ignoreFile == "" {
		candidate := filepath.Join(destDir, IgnoreFileName)
		if _, err := os.Stat(candidate); err == nil {
			s.ignoreFile = candidate
		}
	}

	if s.ignoreFile != "" {
		data, err := os.ReadFile(s.ignoreFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore file: %w", err)
		}
		patterns = append(patterns, parsePatterns(string(data))...)
	}

	for _, p := range opts.Ignore {
		patterns = append(patterns, parsePatterns(p)...)
	}

	s.matcher = gitignore.NewMatcher(patterns)
	return s, nil
}

// IgnoreFile returns the ignore file in use, or "" when there is none.
func (s *Scaffolder) IgnoreFile() string {
	return s.ignoreFile
}

// Ignored reports whether the relative path p is excluded by the ignore
// patterns.
func (s *Scaffolder) Ignored(p string) bool {
	return s.matcher.Match(strings.Split(p, "/"), false)
}

// Apply writes entries below the destination directory. All paths are
// validated before anything is created; a single unsafe path aborts the
// whole call with ErrUnsafePath. Existing files are skipped unless Force is
// set, and an entry of the wrong type in the way yields ErrConflict.
func (s *Scaffolder) Apply(ctx context.Context, entries []treetext.FileEntry) (Report, error) {
	logger := s.opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	report := Report{
		Directories: []string{},
		Written:     []string{},
		Skipped:     []string{},
		Ignored:     []string{},
		DryRun:      s.opts.DryRun,
	}

	files, err := s.plan(entries, &report)
	if err != nil {
		return report, err
	}

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("scaffold: %w", err)
	}

	if !s.opts.DryRun {
		if err := os.MkdirAll(s.destDir, s.opts.DirMode); err != nil {
			return report, fmt.Errorf("failed to create destination %s: %w", s.destDir, err)
		}
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}

	for _, dir := range pathplan.Directories(paths...) {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("scaffold: %w", err)
		}

		created, err := s.ensureDir(dir)
		if err != nil {
			return report, err
		}
		if created {
			report.Directories = append(report.Directories, dir)
			logger.Debug("directory", logging.FieldPath, dir, logging.FieldDryRun, s.opts.DryRun)
		}
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("scaffold: %w", err)
		}

		written, err := s.writeFile(ctx, f)
		if err != nil {
			return report, err
		}
		if !written {
			report.Skipped = append(report.Skipped, f.Path)
			logger.Info("file exists, skipped", logging.FieldPath, f.Path)
			continue
		}
		report.Written = append(report.Written, f.Path)
		report.Bytes += int64(len(f.Content))
		logger.Debug("file", logging.FieldPath, f.Path, logging.FieldBytes, len(f.Content), logging.FieldDryRun, s.opts.DryRun)
	}

	return report, nil
}

// plan validates entries, drops ignored ones and duplicates, and checks
// that no path is used both as a file and as a directory.
func (s *Scaffolder) plan(entries []treetext.FileEntry, report *Report) ([]treetext.FileEntry, error) {
	files := make([]treetext.FileEntry, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if err := ValidatePath(e.Path); err != nil {
			return nil, err
		}
		if _, err := SafeJoin(s.destDir, e.Path); err != nil {
			return nil, err
		}
		if s.Ignored(e.Path) {
			report.Ignored = append(report.Ignored, e.Path)
			continue
		}
		if seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		files = append(files, e)
	}

	for _, f := range files {
		for dir := path.Dir(f.Path); dir != "."; dir = path.Dir(dir) {
			if seen[dir] {
				return nil, fmt.Errorf("%w: %s is both a file and a directory", ErrConflict, dir)
			}
		}
	}

	return files, nil
}

func (s *Scaffolder) ensureDir(rel string) (bool, error) {
	target, err := SafeJoin(s.destDir, rel)
	if err != nil {
		return false, err
	}

	if s.opts.DryRun {
		kind, err := fsutil.Stat(target)
		if err != nil {
			return false, err
		}
		switch kind {
		case fsutil.Missing:
			return true, nil
		case fsutil.Dir:
			return false, nil
		default:
			return false, fmt.Errorf("%w: %s exists and is not a directory", ErrConflict, rel)
		}
	}

	created, err := fsutil.EnsureDir(target, s.opts.DirMode)
	if err != nil {
		if kind, _ := fsutil.Stat(target); kind == fsutil.File || kind == fsutil.Other {
			return false, fmt.Errorf("%w: %s exists and is not a directory", ErrConflict, rel)
		}
		return false, err
	}
	return created, nil
}

// writeFile reports whether the file was (or in a dry run would be) written.
func (s *Scaffolder) writeFile(ctx context.Context, f treetext.FileEntry) (bool, error) {
	target, err := SafeJoin(s.destDir, f.Path)
	if err != nil {
		return false, err
	}

	kind, err := fsutil.Stat(target)
	if err != nil {
		return false, err
	}
	switch kind {
	case fsutil.Dir, fsutil.Other:
		return false, fmt.Errorf("%w: %s exists and is not a regular file", ErrConflict, f.Path)
	case fsutil.File:
		if !s.opts.Force {
			return false, nil
		}
	}

	if s.opts.DryRun {
		return true, nil
	}

	if err := fsutil.WriteAtomic(ctx, target, []byte(f.Content), s.fileMode(f.Path)); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, fmt.Errorf("scaffold: %w", err)
		}
		return false, fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return true, nil
}

func (s *Scaffolder) fileMode(p string) os.FileMode {
	for _, pattern := range s.opts.Executable {
		subject := p
		if !strings.Contains(pattern, "/") {
			subject = path.Base(p)
		}
		if ok, _ := path.Match(pattern, subject); ok {
			return 0o755
		}
	}
	return s.opts.FileMode
}

func parsePatterns(data string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}
