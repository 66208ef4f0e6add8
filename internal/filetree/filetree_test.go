package filetree

import (
	"strings"
	"testing"
)

func TestFileTree(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		result := Build(nil, "")
		if result != "" {
			t.Errorf("Expected empty output, got %q", result)
		}
	})

	t.Run("empty input with root", func(t *testing.T) {
		result := Build(nil, "project")
		if result != "project/" {
			t.Errorf("Expected %q, got %q", "project/", result)
		}
	})

	t.Run("single level tree", func(t *testing.T) {
		paths := []string{"file1.txt", "file2.txt"}
		result := Build(paths, "")
		expected := strings.Join([]string{
			"├── file1.txt",
			"└── file2.txt",
		}, "\n")

		if result != expected {
			t.Errorf("Expected:\n%s\n\nGot:\n%s", expected, result)
		}
	})

	t.Run("multi level tree", func(t *testing.T) {
		paths := []string{
			"dir1/file1.txt",
			"dir2/subdir/file2.txt",
			"file3.txt",
		}
		result := Build(paths, "")
		expected := strings.Join([]string{
			"├── dir1/",
			"│   └── file1.txt",
			"├── dir2/",
			"│   └── subdir/",
			"│       └── file2.txt",
			"└── file3.txt",
		}, "\n")

		if result != expected {
			t.Errorf("Expected:\n%s\n\nGot:\n%s", expected, result)
		}
	})

	t.Run("custom root folder", func(t *testing.T) {
		paths := []string{
			"file1.txt",
			"dir/file2.txt",
		}
		result := Build(paths, "custom")
		expected := strings.Join([]string{
			"custom/",
			"├── dir/",
			"│   └── file2.txt",
			"└── file1.txt",
		}, "\n")

		if result != expected {
			t.Errorf("Expected:\n%s\n\nGot:\n%s", expected, result)
		}
	})

	t.Run("mixed path separators", func(t *testing.T) {
		paths := []string{
			"file1.txt",
			"dir\\subdir\\file2.txt",
			"dir/file3.txt",
		}
		result := Build(paths, "")
		expected := strings.Join([]string{
			"├── dir/",
			"│   ├── subdir/",
			"│   │   └── file2.txt",
			"│   └── file3.txt",
			"└── file1.txt",
		}, "\n")

		if result != expected {
			t.Errorf("Expected:\n%s\n\nGot:\n%s", expected, result)
		}
	})

	t.Run("edge cases with slashes", func(t *testing.T) {
		paths := []string{
			"normal/path.txt",
			"double//slash.txt",
			"/leading/slash.txt",
			"multiple///slashes.txt",
		}
		result := Build(paths, "")
		expected := strings.Join([]string{
			"├── double/",
			"│   └── slash.txt",
			"├── leading/",
			"│   └── slash.txt",
			"├── multiple/",
			"│   └── slashes.txt",
			"└── normal/",
			"    └── path.txt",
		}, "\n")

		if result != expected {
			t.Errorf("Expected:\n%s\n\nGot:\n%s", expected, result)
		}
	})
}

func TestFileTreeStyles(t *testing.T) {
	paths := []string{
		"src/main.go",
		"src/util/util.go",
		"go.mod",
	}

	tests := []struct {
		name     string
		style    Style
		root     string
		expected []string
	}{
		{
			name:  "ascii",
			style: StyleASCII,
			root:  "app",
			expected: []string{
				"app/",
				"+-- src/",
				"|   +-- util/",
				"|   |   \\-- util.go",
				"|   \\-- main.go",
				"\\-- go.mod",
			},
		},
		{
			name:  "indent with root",
			style: StyleIndent,
			root:  "app",
			expected: []string{
				"app/",
				"  src/",
				"    util/",
				"      util.go",
				"    main.go",
				"  go.mod",
			},
		},
		{
			name:  "indent without root",
			style: StyleIndent,
			expected: []string{
				"src/",
				"  util/",
				"    util.go",
				"  main.go",
				"go.mod",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildStyled(paths, tt.root, tt.style)
			expected := strings.Join(tt.expected, "\n")
			if result != expected {
				t.Errorf("Expected:\n%s\n\nGot:\n%s", expected, result)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := map[string]Style{
		"ascii":   StyleASCII,
		"ASCII":   StyleASCII,
		"indent":  StyleIndent,
		"plain":   StyleIndent,
		"unicode": StyleUnicode,
		"":        StyleUnicode,
		"bogus":   StyleUnicode,
	}
	for name, want := range tests {
		if got := ParseStyle(name); got != want {
			t.Errorf("ParseStyle(%q) = %v, want %v", name, got, want)
		}
	}
}
