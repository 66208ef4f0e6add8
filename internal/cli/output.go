package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/holonoms/treescaffold/internal/filetree"
	"github.com/holonoms/treescaffold/internal/treetext"
	"github.com/holonoms/treescaffold/internal/ui"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTree = "tree"
)

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q: use one of %s", format, strings.Join(allowed, ", "))
}

// writeResult prints a parse result in the requested format.
func writeResult(w io.Writer, res treetext.Result, opts *Options) error {
	if !opts.Content {
		entries := make([]treetext.FileEntry, len(res.Entries))
		for i, e := range res.Entries {
			entries[i] = treetext.FileEntry{Path: e.Path}
		}
		res.Entries = entries
	}

	switch opts.Format {
	case formatJSON:
		return writeJSON(w, res)
	case formatYAML:
		return writeYAML(w, res)
	case formatTree:
		paths := make([]string, len(res.Entries))
		for i, e := range res.Entries {
			paths[i] = strings.TrimPrefix(e.Path, res.Root+"/")
		}
		tree := filetree.BuildStyled(paths, res.Root, filetree.ParseStyle(opts.Style))
		if tree == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, tree)
		return err
	default:
		return writeEntries(w, res.Entries, opts.Content, opts.styles)
	}
}

func writeEntries(w io.Writer, entries []treetext.FileEntry, content bool, styles *ui.Styles) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, stylePath(e.Path, styles)); err != nil {
			return err
		}
		if !content || e.Content == "" {
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(e.Content, "\n"), "\n") {
			if _, err := fmt.Fprintln(w, "    "+styles.Content.Render(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

// stylePath renders the directory part and the base name of p separately.
func stylePath(p string, styles *ui.Styles) string {
	dir, base := path.Split(p)
	if dir == "" {
		return styles.File.Render(base)
	}
	return styles.Directory.Render(dir) + styles.File.Render(base)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("unable to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("unable to encode yaml: %w", err)
	}
	return enc.Close()
}
