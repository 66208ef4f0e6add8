// Package treetext converts directory-tree diagrams, as printed by tree(1) or
// drawn by hand with box-drawing characters, ASCII connectors or plain
// indentation, into the list of files they describe.
//
// Parsing is tolerant: lines that cannot be decoded and nesting that skips
// levels are reported as warnings, never as errors. A Parser holds only its
// options, so one value may be shared between goroutines.
package treetext

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNilReader is returned by ParseReader when it is given no reader.
var ErrNilReader = errors.New("treetext: nil reader")

// FileEntry is one file described by a diagram.
type FileEntry struct {
	// Path is the slash-separated path of the file, starting with the root
	// directory when the diagram declares one.
	Path string `json:"path" yaml:"path"`

	// Content is the initial body of the file. See Placeholder.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// Node is the decoded form of one diagram line.
type Node struct {
	Depth int
	Name  string
	IsDir bool
	Line  int
}

// WarningKind classifies a recoverable input problem.
type WarningKind string

const (
	// WarnEmptyName marks a line with nothing but tree symbols on it.
	WarnEmptyName WarningKind = "empty-name"
	// WarnDepthJump marks a line nested more than one level below the one
	// before it.
	WarnDepthJump WarningKind = "depth-jump"
)

// Warning describes a line that was skipped or adjusted.
type Warning struct {
	Line    int         `json:"line" yaml:"line"`
	Kind    WarningKind `json:"kind" yaml:"kind"`
	Text    string      `json:"text" yaml:"text"`
	Message string      `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Kind, w.Message)
}

// Result is the outcome of parsing one diagram.
type Result struct {
	// Root is the declared root directory, or "" when the diagram has none.
	Root     string      `json:"root" yaml:"root"`
	Entries  []FileEntry `json:"entries" yaml:"entries"`
	Warnings []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Paths returns the path of every entry, in order.
func (r Result) Paths() []string {
	paths := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		paths[i] = e.Path
	}
	return paths
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sends warnings to logger as they are found.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithIndentUnit fixes the width of one nesting level instead of estimating
// it from the input. Values below one restore estimation.
func WithIndentUnit(unit int) Option {
	return func(p *Parser) {
		p.unit = unit
	}
}

// WithDirectoryInference treats a name without a trailing slash as a
// directory when the line after it is nested deeper.
func WithDirectoryInference(enabled bool) Option {
	return func(p *Parser) {
		p.inferDirs = enabled
	}
}

// WithPlaceholder replaces the function that produces each entry's content.
func WithPlaceholder(fn func(path string) string) Option {
	return func(p *Parser) {
		if fn != nil {
			p.placeholder = fn
		}
	}
}

// Parser turns diagrams into file entries.
type Parser struct {
	logger      *log.Logger
	unit        int
	inferDirs   bool
	placeholder func(string) string
}

// New creates a Parser. Without options it estimates the indent unit,
// requires a trailing slash on directories and discards diagnostics.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger:      log.New(io.Discard),
		placeholder: Placeholder,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text with a default Parser and returns its entries.
func Parse(text string) []FileEntry {
	return New().Parse(text).Entries
}

// ParseReader reads a whole diagram from r and parses it.
func (p *Parser) ParseReader(r io.Reader) (Result, error) {
	if r == nil {
		return Result{}, ErrNilReader
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read diagram: %w", err)
	}
	return p.Parse(string(data)), nil
}

// Parse decodes a diagram. It never fails: blank input yields an empty
// result, and odd lines are skipped or adjusted with a warning.
func (p *Parser) Parse(text string) Result {
	res := Result{Entries: []FileEntry{}}

	lines := dropSummary(splitLines(text))
	if len(lines) == 0 {
		return res
	}

	root, lines := detectRoot(lines)
	res.Root = root

	tokens, warnings := tokenize(lines)
	nodes, jumps := layout(tokens, p.unit)
	if p.inferDirs {
		inferDirectories(nodes)
	}

	res.Entries = p.reduce(root, nodes)
	res.Warnings = append(warnings, jumps...)
	sort.SliceStable(res.Warnings, func(i, j int) bool {
		return res.Warnings[i].Line < res.Warnings[j].Line
	})

	for _, w := range res.Warnings {
		p.logger.Warn(w.Message, "line", w.Line, "kind", string(w.Kind), "text", w.Text)
	}

	return res
}

// reduce walks nodes with a stack of open directories, indexed by depth, and
// emits an entry for every file.
func (p *Parser) reduce(root string, nodes []Node) []FileEntry {
	entries := make([]FileEntry, 0, len(nodes))
	stack := make([]string, 0, 8)

	for _, n := range nodes {
		if len(stack) > n.Depth {
			stack = stack[:n.Depth]
		}

		if n.IsDir {
			for len(stack) < n.Depth {
				stack = append(stack, "")
			}
			stack = append(stack, n.Name)
			continue
		}

		segments := make([]string, 0, len(stack)+2)
		if root != "" {
			segments = append(segments, root)
		}
		for _, dir := range stack {
			if dir != "" {
				segments = append(segments, dir)
			}
		}
		segments = append(segments, n.Name)

		path := strings.Join(segments, "/")
		entries = append(entries, FileEntry{
			Path:    path,
			Content: p.placeholder(path),
		})
	}

	return entries
}

// detectRoot removes the root line from lines. The root is a first line
// without indentation whose name ends in a slash, as long as no later line
// shares its column: "src/" followed by "docs/" lists two siblings. A bare
// "." or "./", as printed by tree(1), is consumed without naming a root.
func detectRoot(lines []rawLine) (string, []rawLine) {
	first := lines[0].text
	if width, _ := MeasureIndent(first); width != 0 {
		return "", lines
	}

	name := CleanName(first)
	if name == "." || name == "./" {
		return "", lines[1:]
	}

	root, isDir := splitDir(name)
	if !isDir || root == "" {
		return "", lines
	}
	for _, l := range lines[1:] {
		if width, _ := MeasureIndent(l.text); width == 0 {
			return "", lines
		}
	}
	return root, lines[1:]
}

func dropSummary(lines []rawLine) []rawLine {
	if n := len(lines); n > 0 && treeSummary.MatchString(strings.TrimSpace(lines[n-1].text)) {
		return lines[:n-1]
	}
	return lines
}

func depthJumpMessage(got, clamped int) string {
	return fmt.Sprintf("nesting skips from level %d to %d, treated as level %d", clamped-1, got, clamped)
}
