package cli

import (
	"github.com/spf13/cobra"
)

// addParseFlags adds the output flags of the parse command to cmd.
func addParseFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "Output format: text, json, yaml or tree")
	cmd.Flags().StringVar(&opts.Style, "style", "unicode", "Drawing style of the tree format: unicode, ascii or indent")
	cmd.Flags().BoolVar(&opts.Content, "content", false, "Include placeholder file contents")
}

// newParseCmd creates the parse command
func newParseCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "List the files described by a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The root command runs this too, with arbitrary args.
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			if err := checkFormat(opts.Format, formatText, formatJSON, formatYAML, formatTree); err != nil {
				return err
			}

			res, err := readDiagram(cmd, opts, args)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, opts)
		},
	}

	addParseFlags(cmd, opts)
	return cmd
}
