package treetext

import "testing"

func TestEstimateUnit(t *testing.T) {
	tests := []struct {
		name     string
		widths   []int
		expected int
	}{
		{"no widths", nil, DefaultIndentUnit},
		{"nothing indented", []int{0, 0, 0}, DefaultIndentUnit},
		{"box drawing", []int{4, 8, 4}, 4},
		{"two spaces", []int{0, 2, 4, 2}, 2},
		{"three columns", []int{3, 6, 9}, 3},
		{"first entry flush", []int{0, 0, 4, 8}, 4},
		{"first entry deeper than the rest", []int{8, 12, 4, 8}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateUnit(tt.widths); got != tt.expected {
				t.Errorf("EstimateUnit(%v) = %d, want %d", tt.widths, got, tt.expected)
			}
		})
	}
}

func TestMeasureDepth(t *testing.T) {
	tests := []struct {
		width, unit, expected int
	}{
		{0, 4, 0},
		{4, 4, 1},
		{8, 4, 2},
		{5, 4, 1},
		{6, 4, 2},
		{3, 2, 2},
		{4, 0, 1},
	}

	for _, tt := range tests {
		if got := measureDepth(tt.width, tt.unit); got != tt.expected {
			t.Errorf("measureDepth(%d, %d) = %d, want %d", tt.width, tt.unit, got, tt.expected)
		}
	}
}

func TestLayout(t *testing.T) {
	tokens := []token{
		{line: 2, width: 4, name: "a", isDir: true},
		{line: 3, width: 16, name: "b.txt"},
		{line: 4, width: 0, name: "c.txt"},
	}

	nodes, warnings := layout(tokens, 0)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}

	depths := []int{nodes[0].Depth, nodes[1].Depth, nodes[2].Depth}
	if depths[0] != 0 || depths[1] != 1 || depths[2] != 0 {
		t.Errorf("depths = %v, want [0 1 0]", depths)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %#v, want depth jumps on lines 2 and 3", warnings)
	}
	for i, line := range []int{2, 3} {
		if warnings[i].Kind != WarnDepthJump || warnings[i].Line != line {
			t.Errorf("warnings[%d] = %#v, want depth jump on line %d", i, warnings[i], line)
		}
	}
}

func TestLayout_ShallowerLaterLine(t *testing.T) {
	tokens := []token{
		{line: 2, width: 8, name: "a", isDir: true},
		{line: 3, width: 12, name: "x.go"},
		{line: 4, width: 4, name: "b", isDir: true},
		{line: 5, width: 8, name: "y.go"},
	}

	nodes, warnings := layout(tokens, 0)
	var depths []int
	for _, n := range nodes {
		depths = append(depths, n.Depth)
	}
	want := []int{0, 1, 0, 1}
	for i := range want {
		if depths[i] != want[i] {
			t.Fatalf("depths = %v, want %v", depths, want)
		}
	}
	if len(warnings) != 2 || warnings[0].Line != 2 || warnings[1].Line != 3 {
		t.Errorf("warnings = %#v, want depth jumps on lines 2 and 3", warnings)
	}
}

func TestInferDirectories(t *testing.T) {
	nodes := []Node{
		{Depth: 0, Name: "src"},
		{Depth: 1, Name: "main.go"},
		{Depth: 0, Name: "README"},
	}
	inferDirectories(nodes)

	if !nodes[0].IsDir {
		t.Error("expected src to be inferred as a directory")
	}
	if nodes[1].IsDir || nodes[2].IsDir {
		t.Error("expected files to stay files")
	}
}
