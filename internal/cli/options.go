// Package cli provides the command-line interface for treescaffold
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/holonoms/treescaffold/internal/config"
	"github.com/holonoms/treescaffold/internal/treetext"
	"github.com/holonoms/treescaffold/internal/ui"
)

// Options holds the command-line options shared across commands
type Options struct {
	// ProjectDir is where the project configuration file (.treescaffold) is
	// looked up. Defaults to the current directory.
	ProjectDir string

	// Debug enables debug logging regardless of the log.level setting.
	Debug bool

	// Color selects colored output: auto, always or never.
	Color string

	// Format selects the output of parse and dirs: text, json, yaml or tree.
	Format string

	// Style is the drawing style used by the tree format.
	Style string

	// Markdown extracts the diagram from a Markdown document before parsing.
	Markdown bool

	// Content includes placeholder file contents in the parse output.
	Content bool

	// IndentUnit fixes the width of one nesting level; 0 estimates it.
	// If nil, the value from config will be used. If set, it overrides the config.
	IndentUnit *int

	// InferDirs treats names followed by deeper lines as directories.
	// If nil, the value from config will be used. If set, it overrides the config.
	InferDirs *bool

	// OutDir is the destination of the scaffold command.
	OutDir string

	// DryRun reports what scaffold would do without writing anything.
	DryRun bool

	// Force overwrites existing files. If nil, the value from config will be used.
	Force *bool

	// IgnoreFile is a gitignore-style file of paths scaffold skips. If empty,
	// .treescaffoldignore in the destination is used when present.
	IgnoreFile string

	// Exclude holds extra gitignore-style patterns for scaffold.
	Exclude []string

	// Executable holds glob patterns of files scaffold marks executable.
	Executable []string

	// DirMode and FileMode are octal permissions for scaffold. If empty, the
	// values from config will be used.
	DirMode  string
	FileMode string

	cfg    *config.Config
	styles *ui.Styles
}

// SetDefaults sets default values for options that were not provided
func (o *Options) SetDefaults() {
	if o.ProjectDir == "" {
		o.ProjectDir = "."
	}
	if o.Color == "" {
		o.Color = ui.ColorAuto
	}
	if o.Format == "" {
		o.Format = formatText
	}
	if o.OutDir == "" {
		o.OutDir = "."
	}
}

// parser builds a treetext.Parser from flags, falling back to config.
func (o *Options) parser(logger *log.Logger) (*treetext.Parser, error) {
	unit := 0
	if o.IndentUnit != nil {
		unit = *o.IndentUnit
	} else if o.cfg != nil {
		v, err := o.cfg.GetInt("parser.indent_unit", 0)
		if err != nil {
			return nil, err
		}
		unit = v
	}
	if unit < 0 {
		return nil, fmt.Errorf("indent unit must not be negative, got %d", unit)
	}

	infer := false
	if o.InferDirs != nil {
		infer = *o.InferDirs
	} else if o.cfg != nil {
		v, err := o.cfg.GetBool("parser.infer_dirs", false)
		if err != nil {
			return nil, err
		}
		infer = v
	}

	return treetext.New(
		treetext.WithLogger(logger),
		treetext.WithIndentUnit(unit),
		treetext.WithDirectoryInference(infer),
	), nil
}

func (o *Options) force() (bool, error) {
	if o.Force != nil {
		return *o.Force, nil
	}
	if o.cfg == nil {
		return false, nil
	}
	return o.cfg.GetBool("scaffold.force", false)
}

// mode resolves a permission from its flag value or config key.
func (o *Options) mode(flag, key string, def os.FileMode) (os.FileMode, error) {
	value := flag
	if value == "" && o.cfg != nil && o.cfg.Has(key) {
		value = o.cfg.Get(key)
	}
	if value == "" {
		return def, nil
	}
	m, err := parsePerm(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return m, nil
}

// parsePerm parses an octal permission such as "755" or "0o644".
func parsePerm(s string) (os.FileMode, error) {
	digits := s
	if len(digits) > 2 && (digits[:2] == "0o" || digits[:2] == "0O") {
		digits = digits[2:]
	}
	v, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal permission %q", s)
	}
	if v == 0 || v > 0o777 {
		return 0, fmt.Errorf("permission %q out of range", s)
	}
	return os.FileMode(v), nil
}
