package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holonoms/treescaffold/internal/extract"
)

// newExtractCmd creates the extract command
func newExtractCmd(_ *Options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Print the tree diagram found in a Markdown document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("unable to read %s: %w", name, err)
			}

			w := cmd.OutOrStdout()
			if !all {
				diagram, err := extract.Best(data)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				_, err = fmt.Fprint(w, ensureNewline(diagram))
				return err
			}

			blocks := extract.Blocks(data)
			if len(blocks) == 0 {
				return fmt.Errorf("%s: %w", name, extract.ErrNoDiagram)
			}
			for i, b := range blocks {
				if i > 0 {
					if _, err := fmt.Fprintln(w); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprint(w, ensureNewline(b.Text)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every diagram, separated by blank lines")
	return cmd
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
