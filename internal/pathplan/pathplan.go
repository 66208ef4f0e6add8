// Package pathplan derives the directories that must exist before a set of
// files can be written.
package pathplan

import (
	"sort"
	"strings"

	"github.com/holonoms/treescaffold/internal/treetext"
)

// DirectoriesToCreate returns every directory implied by the entry paths,
// each once, ordered so that a parent always precedes its children:
// shallowest first, then by name.
func DirectoriesToCreate(entries []treetext.FileEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return Directories(paths...)
}

// Directories is DirectoriesToCreate for plain slash-separated file paths.
func Directories(paths ...string) []string {
	seen := make(map[string]struct{})
	dirs := []string{}

	for _, p := range paths {
		segments := splitPath(p)
		for i := 1; i < len(segments); i++ {
			dir := strings.Join(segments[:i], "/")
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	sort.Slice(dirs, func(i, j int) bool {
		di, dj := Depth(dirs[i]), Depth(dirs[j])
		if di != dj {
			return di < dj
		}
		return dirs[i] < dirs[j]
	})

	return dirs
}

// Depth returns the number of segments in a slash-separated path.
func Depth(p string) int {
	return len(splitPath(p))
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
