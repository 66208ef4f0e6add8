package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holonoms/treescaffold/internal/logging"
	"github.com/holonoms/treescaffold/internal/pathplan"
)

// newDirsCmd creates the dirs command
func newDirsCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirs [file]",
		Short: "List the directories a diagram needs, parents first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.Format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}

			res, err := readDiagram(cmd, opts, args)
			if err != nil {
				return err
			}

			dirs := pathplan.DirectoriesToCreate(res.Entries)
			logging.FromContext(cmd.Context()).Debug("directories planned", logging.FieldDirectories, len(dirs))

			w := cmd.OutOrStdout()
			switch opts.Format {
			case formatJSON:
				return writeJSON(w, dirs)
			case formatYAML:
				return writeYAML(w, dirs)
			}
			for _, d := range dirs {
				if _, err := fmt.Fprintln(w, opts.styles.Directory.Render(d)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "Output format: text, json or yaml")
	return cmd
}
