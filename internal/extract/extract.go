// Package extract finds directory-tree diagrams inside Markdown documents,
// such as the replies of a chat assistant asked to lay out a project.
package extract

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/holonoms/treescaffold/internal/treetext"
)

// ErrNoDiagram is returned when a document holds no tree diagram.
var ErrNoDiagram = errors.New("no tree diagram found")

// connectors are the fragments that only appear in drawn trees.
var connectors = []string{"├", "└", "│", "+--", "\\--", "|--", "`--"}

// Block is a code block that looks like a tree diagram.
type Block struct {
	// Language is the info string of a fenced block, or "" for none.
	Language string
	// Text is the block content without fences.
	Text string
	// Line is the 1-based line of the first content line in the document.
	Line int
}

// Blocks returns every code block of markdown that looks like a tree
// diagram, in document order.
func Blocks(markdown []byte) []Block {
	return trees(codeBlocks(markdown))
}

func trees(blocks []Block) []Block {
	var out []Block
	for _, b := range blocks {
		if LooksLikeTree(b.Text) {
			out = append(out, b)
		}
	}
	return out
}

// codeBlocks returns the content of every fenced or indented code block.
func codeBlocks(markdown []byte) []Block {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(markdown))

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var lang string
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			lang = string(node.Language(markdown))
		case *ast.CodeBlock:
		default:
			return ast.WalkContinue, nil
		}

		lines := n.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		var buf bytes.Buffer
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(markdown))
		}

		blocks = append(blocks, Block{
			Language: lang,
			Text:     buf.String(),
			Line:     bytes.Count(markdown[:lines.At(0).Start], []byte("\n")) + 1,
		})
		return ast.WalkSkipChildren, nil
	})

	return blocks
}

// Best returns the tree diagram with the most lines in markdown. When the
// document has no code blocks at all but itself looks like a tree, the whole
// document is returned. A document whose code blocks hold no diagram yields
// ErrNoDiagram even if its prose draws connectors.
func Best(markdown []byte) (string, error) {
	all := codeBlocks(markdown)
	if len(all) == 0 {
		if s := string(markdown); LooksLikeTree(s) {
			return s, nil
		}
		return "", ErrNoDiagram
	}

	blocks := trees(all)
	if len(blocks) == 0 {
		return "", ErrNoDiagram
	}

	best := blocks[0]
	for _, b := range blocks[1:] {
		if strings.Count(b.Text, "\n") > strings.Count(best.Text, "\n") {
			best = b
		}
	}
	return best.Text, nil
}

// LooksLikeTree reports whether s resembles a directory-tree diagram: it
// draws connectors, or it opens with a "name/" line followed by indented
// lines.
func LooksLikeTree(s string) bool {
	for _, c := range connectors {
		if strings.Contains(s, c) {
			return true
		}
	}

	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return false
	}

	first := treetext.CleanName(lines[0])
	if !strings.HasSuffix(first, "/") || strings.ContainsAny(first, " =(){};") {
		return false
	}
	for _, l := range lines[1:] {
		if width, _ := treetext.MeasureIndent(l); width == 0 {
			continue
		}
		return true
	}
	return false
}
