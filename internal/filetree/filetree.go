// Package filetree renders a list of file paths as a directory-tree diagram.
// It is the inverse of package treetext: a diagram produced here parses back
// into the same set of paths, whichever Style draws it.
package filetree

import (
	"sort"
	"strings"
)

// Style selects the characters used to draw the hierarchy.
type Style int

const (
	// StyleUnicode draws with box-drawing characters, as tree(1) does.
	StyleUnicode Style = iota
	// StyleASCII draws with +--, \-- and |.
	StyleASCII
	// StyleIndent draws with two spaces per level and no connectors.
	StyleIndent
)

// ParseStyle maps a style name to a Style. Unknown names yield StyleUnicode.
func ParseStyle(name string) Style {
	switch strings.ToLower(name) {
	case "ascii":
		return StyleASCII
	case "indent", "plain":
		return StyleIndent
	default:
		return StyleUnicode
	}
}

type glyphs struct {
	branch string // connector before a non-final entry
	last   string // connector before the final entry of a directory
	pipe   string // prefix continuing a non-final ancestor
	blank  string // prefix under a final ancestor
	lead   string // prefix for the root's children when a root line is drawn
}

var styleGlyphs = map[Style]glyphs{
	StyleUnicode: {branch: "├── ", last: "└── ", pipe: "│   ", blank: "    "},
	StyleASCII:   {branch: "+-- ", last: "\\-- ", pipe: "|   ", blank: "    "},
	StyleIndent:  {pipe: "  ", blank: "  ", lead: "  "},
}

// Node represents a single node in the file tree structure. It's a map where
// the key is the name of the directory or file and the value holds its
// children. Files have no children.
type Node map[string]Node

// FileTree holds the hierarchy built from a set of paths.
type FileTree struct {
	root  Node
	style Style
}

// New creates a FileTree from slash- or backslash-separated paths. Empty
// segments are ignored, so "a//b" and "/a/b" both describe a/b.
func New(paths []string) *FileTree {
	tree := &FileTree{
		root: make(Node),
	}

	for _, path := range paths {
		path = strings.ReplaceAll(path, "\\", "/")
		tree.addPath(strings.Split(path, "/"))
	}

	return tree
}

// WithStyle sets the drawing style and returns t.
func (t *FileTree) WithStyle(style Style) *FileTree {
	t.style = style
	return t
}

// String renders the tree. When root is not empty the first line is "root/"
// and every entry is drawn one level below it.
func (t *FileTree) String(root string) string {
	g := styleGlyphs[t.style]

	var result []string
	prefix := ""
	if root != "" {
		result = append(result, strings.TrimSuffix(root, "/")+"/")
		prefix = g.lead
	}

	t.buildTree(t.root, prefix, g, &result)
	return strings.Join(result, "\n")
}

// addPath adds a path to the internal tree structure by iterating through
// its components and creating the necessary nested maps.
func (t *FileTree) addPath(parts []string) {
	current := t.root

	for _, part := range parts {
		if part == "" {
			continue
		}

		if current[part] == nil {
			current[part] = make(Node)
		}

		current = current[part]
	}
}

// buildTree renders node's children, directories first, each group sorted
// by name.
func (t *FileTree) buildTree(node Node, prefix string, g glyphs, result *[]string) {
	var dirs, files []string
	for name, children := range node {
		if len(children) > 0 {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	entries := dirs
	entries = append(entries, files...)

	for i, name := range entries {
		isLast := i == len(entries)-1
		connector := g.branch
		if isLast {
			connector = g.last
		}

		isDir := i < len(dirs)
		displayName := name
		if isDir {
			displayName += "/"
		}

		*result = append(*result, prefix+connector+displayName)

		if isDir {
			newPrefix := prefix + g.pipe
			if isLast {
				newPrefix = prefix + g.blank
			}
			t.buildTree(node[name], newPrefix, g, result)
		}
	}
}

// Build creates and renders a Unicode file tree in one step.
func Build(paths []string, root string) string {
	return New(paths).String(root)
}

// BuildStyled creates and renders a file tree drawn with style.
func BuildStyled(paths []string, root string, style Style) string {
	return New(paths).WithStyle(style).String(root)
}
