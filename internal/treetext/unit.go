package treetext

import "fmt"

// DefaultIndentUnit is the indent width of one nesting level when the input
// gives no evidence of its own. Box-drawing renderings use four columns per
// level ("├── ", "│   ").
const DefaultIndentUnit = 4

// EstimateUnit returns the indent width that counts as one nesting level:
// the smallest non-zero width, or DefaultIndentUnit when nothing is
// indented. In a well-formed diagram that is the width of the first indented
// line; a first entry drawn with an extra margin does not inflate the unit.
func EstimateUnit(widths []int) int {
	unit := 0
	for _, w := range widths {
		if w > 0 && (unit == 0 || w < unit) {
			unit = w
		}
	}
	if unit == 0 {
		return DefaultIndentUnit
	}
	return unit
}

// measureDepth converts an indent width into a whole number of units,
// rounding to the nearest one.
func measureDepth(width, unit int) int {
	if unit <= 0 {
		unit = DefaultIndentUnit
	}
	return (width + unit/2) / unit
}

// layout assigns depths to tokens and clamps jumps of more than one level.
// Depths are counted from the shallowest line, so a diagram drawn entirely
// below a root line starts at level 0.
func layout(tokens []token, fixedUnit int) ([]Node, []Warning) {
	if len(tokens) == 0 {
		return nil, nil
	}

	widths := make([]int, len(tokens))
	for i, t := range tokens {
		widths[i] = t.width
	}
	unit := fixedUnit
	if unit <= 0 {
		unit = EstimateUnit(widths)
	}
	measured := make([]int, len(tokens))
	base := -1
	for i, w := range widths {
		measured[i] = measureDepth(w, unit)
		if base < 0 || measured[i] < base {
			base = measured[i]
		}
	}

	nodes := make([]Node, 0, len(tokens))
	var warnings []Warning
	last := -1

	for i, t := range tokens {
		depth := measured[i] - base
		if depth > last+1 {
			msg := depthJumpMessage(depth, last+1)
			if last < 0 {
				msg = fmt.Sprintf("first entry is indented %d level(s) deeper than later entries, treated as level 0", depth)
			}
			warnings = append(warnings, Warning{
				Line:    t.line,
				Kind:    WarnDepthJump,
				Text:    t.text,
				Message: msg,
			})
			depth = last + 1
		}
		nodes = append(nodes, Node{
			Depth: depth,
			Name:  t.name,
			IsDir: t.isDir,
			Line:  t.line,
		})
		last = depth
	}

	return nodes, warnings
}

// inferDirectories marks a node as a directory when the node after it is
// nested deeper.
func inferDirectories(nodes []Node) {
	for i := range nodes {
		if !nodes[i].IsDir && i+1 < len(nodes) && nodes[i+1].Depth > nodes[i].Depth {
			nodes[i].IsDir = true
		}
	}
}
