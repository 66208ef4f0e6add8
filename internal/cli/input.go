package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holonoms/treescaffold/internal/extract"
	"github.com/holonoms/treescaffold/internal/logging"
	"github.com/holonoms/treescaffold/internal/treetext"
)

const stdinName = "-"

// openInput opens the file named by args, or stdin when there is none.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == stdinName {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("unable to open input: %w", err)
	}
	return f, args[0], nil
}

// readDiagram reads and parses the diagram named by args.
func readDiagram(cmd *cobra.Command, opts *Options, args []string) (treetext.Result, error) {
	logger := logging.FromContext(cmd.Context())

	in, name, err := openInput(cmd, args)
	if err != nil {
		return treetext.Result{}, err
	}
	defer in.Close()

	parser, err := opts.parser(logger.With(logging.FieldInput, name))
	if err != nil {
		return treetext.Result{}, err
	}

	var r io.Reader = in
	if opts.Markdown {
		data, err := io.ReadAll(in)
		if err != nil {
			return treetext.Result{}, fmt.Errorf("unable to read %s: %w", name, err)
		}
		diagram, err := extract.Best(data)
		if err != nil {
			return treetext.Result{}, fmt.Errorf("%s: %w", name, err)
		}
		r = strings.NewReader(diagram)
	}

	res, err := parser.ParseReader(r)
	if err != nil {
		return treetext.Result{}, fmt.Errorf("unable to parse %s: %w", name, err)
	}

	logger.Debug("diagram parsed",
		logging.FieldInput, name,
		logging.FieldRoot, res.Root,
		logging.FieldEntries, len(res.Entries),
		logging.FieldWarnings, len(res.Warnings),
	)
	return res, nil
}
