package treetext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Glyphs is the set of runes treated as tree structure rather than content.
// Whitespace is always structural as well. The ASCII hyphen and backtick are
// included so that `+--`, `|--` and "`--" connectors are consumed whole.
const Glyphs = "│├└─+|\\-`"

// tabWidth is the number of columns a tab contributes to an indent.
const tabWidth = 4

// rawLine is one non-blank line of input.
type rawLine struct {
	num  int
	text string
}

// token is a decoded line before depth assignment.
type token struct {
	line  int
	width int
	name  string
	isDir bool
	text  string
}

// annotations are the markers after which the rest of a line is a comment.
// Each must be preceded by whitespace to count.
var annotations = []string{"#", "//", "<-", "←"}

// treeSummary matches the trailing "3 directories, 5 files" line of tree(1).
var treeSummary = regexp.MustCompile(`^\d+ director(y|ies)(, \d+ files?)?$`)

// IsGlyph reports whether r is part of a tree drawing prefix.
func IsGlyph(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(Glyphs, r)
}

// MeasureIndent returns the visual width of the leading glyph run of s and
// the byte offset at which the run ends.
func MeasureIndent(s string) (width, offset int) {
	for i, r := range s {
		if !IsGlyph(r) {
			return width, i
		}
		if r == '\t' {
			width += tabWidth
		} else {
			width++
		}
	}
	return width, len(s)
}

// CleanName strips residual glyphs, inline annotations and surrounding space
// from the text that follows an indent.
func CleanName(rest string) string {
	name := strings.TrimLeftFunc(rest, IsGlyph)
	name = stripAnnotation(name)
	return strings.TrimSpace(name)
}

func stripAnnotation(s string) string {
	cut := len(s)
	for _, marker := range annotations {
		from := 0
		for {
			i := strings.Index(s[from:], marker)
			if i < 0 {
				break
			}
			i += from
			if r, _ := utf8.DecodeLastRuneInString(s[:i]); i > 0 && unicode.IsSpace(r) {
				if i < cut {
					cut = i
				}
				break
			}
			from = i + len(marker)
		}
	}
	return s[:cut]
}

// splitDir separates a trailing path separator from name.
func splitDir(name string) (string, bool) {
	if !strings.HasSuffix(name, "/") {
		return name, false
	}
	return strings.TrimRight(name, "/"), true
}

// splitLines breaks text into non-blank lines and removes the leading
// whitespace margin that every line shares.
func splitLines(text string) []rawLine {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []rawLine
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, rawLine{num: i + 1, text: l})
	}
	return dedent(lines)
}

func dedent(lines []rawLine) []rawLine {
	margin := -1
	for _, l := range lines {
		n := 0
		for _, r := range l.text {
			if !unicode.IsSpace(r) {
				break
			}
			n++
		}
		if margin < 0 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return lines
	}
	for i, l := range lines {
		runes := []rune(l.text)
		lines[i].text = string(runes[margin:])
	}
	return lines
}

// tokenize decodes lines into tokens. Lines without a usable name are
// reported as warnings and dropped.
func tokenize(lines []rawLine) ([]token, []Warning) {
	tokens := make([]token, 0, len(lines))
	var warnings []Warning

	for _, l := range lines {
		width, offset := MeasureIndent(l.text)
		name, isDir := splitDir(CleanName(l.text[offset:]))
		if name == "" {
			warnings = append(warnings, Warning{
				Line:    l.num,
				Kind:    WarnEmptyName,
				Text:    l.text,
				Message: "no name after tree symbols, line skipped",
			})
			continue
		}
		tokens = append(tokens, token{
			line:  l.num,
			width: width,
			name:  name,
			isDir: isDir,
			text:  l.text,
		})
	}

	return tokens, warnings
}
