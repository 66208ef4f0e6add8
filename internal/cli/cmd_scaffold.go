package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/holonoms/treescaffold/internal/fsutil"
	"github.com/holonoms/treescaffold/internal/logging"
	"github.com/holonoms/treescaffold/internal/scaffold"
	"github.com/holonoms/treescaffold/internal/treetext"
	"github.com/holonoms/treescaffold/internal/ui"
	"github.com/holonoms/treescaffold/internal/util"
)

// newScaffoldCmd creates the scaffold command
func newScaffoldCmd(opts *Options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "scaffold [file]",
		Short: "Create the directories and files described by a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("force") {
				opts.Force = &force
			}
			if err := checkFormat(opts.Format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}

			res, err := readDiagram(cmd, opts, args)
			if err != nil {
				return err
			}

			report, err := runScaffold(cmd, opts, res.Entries)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch opts.Format {
			case formatJSON:
				return writeJSON(w, report)
			case formatYAML:
				return writeYAML(w, report)
			}
			return writeReport(w, report, opts.styles)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", opts.OutDir, "Destination directory")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Show what would be created without writing")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&opts.IgnoreFile, "ignore", "", "Ignore file (default: .treescaffoldignore in the destination)")
	cmd.Flags().StringArrayVarP(&opts.Exclude, "exclude", "x", nil, "Gitignore-style pattern of paths to skip (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Executable, "executable", nil, "Glob of files to mark executable (repeatable)")
	cmd.Flags().StringVar(&opts.DirMode, "dir-mode", "", "Octal permissions of created directories (default 755)")
	cmd.Flags().StringVar(&opts.FileMode, "file-mode", "", "Octal permissions of created files (default 644)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "Report format: text, json or yaml")

	return cmd
}

func runScaffold(cmd *cobra.Command, opts *Options, entries []treetext.FileEntry) (scaffold.Report, error) {
	force, err := opts.force()
	if err != nil {
		return scaffold.Report{}, err
	}
	dirMode, err := opts.mode(opts.DirMode, "scaffold.dir_mode", fsutil.DefaultDirMode)
	if err != nil {
		return scaffold.Report{}, err
	}
	fileMode, err := opts.mode(opts.FileMode, "scaffold.file_mode", fsutil.DefaultFileMode)
	if err != nil {
		return scaffold.Report{}, err
	}

	s, err := scaffold.New(opts.OutDir, scaffold.Options{
		DryRun:     opts.DryRun,
		Force:      force,
		DirMode:    dirMode,
		FileMode:   fileMode,
		Executable: opts.Executable,
		IgnoreFile: opts.IgnoreFile,
		Ignore:     opts.Exclude,
	})
	if err != nil {
		return scaffold.Report{}, fmt.Errorf("unable to create scaffolder: %w", err)
	}

	logger := logging.FromContext(cmd.Context())
	if f := s.IgnoreFile(); f != "" {
		logger.Debug("using ignore file", logging.FieldPath, f)
	}

	report, err := s.Apply(cmd.Context(), entries)
	if err != nil {
		return report, fmt.Errorf("unable to scaffold: %w", err)
	}

	logger.Debug("scaffold finished",
		logging.FieldOutput, opts.OutDir,
		logging.FieldDirectories, len(report.Directories),
		logging.FieldEntries, len(report.Written),
		logging.FieldSkipped, len(report.Skipped),
		logging.FieldIgnored, len(report.Ignored),
		logging.FieldDryRun, report.DryRun,
	)
	return report, nil
}

// writeReport prints one line per action followed by a summary.
func writeReport(w io.Writer, r scaffold.Report, styles *ui.Styles) error {
	var lines []string
	for _, d := range r.Directories {
		lines = append(lines, styles.Dim.Render("mkdir  ")+styles.Directory.Render(d+"/"))
	}
	for _, f := range r.Written {
		lines = append(lines, styles.Success.Render("create ")+stylePath(f, styles))
	}
	for _, f := range r.Skipped {
		lines = append(lines, styles.Skipped.Render("skip   "+f+" (exists)"))
	}
	for _, f := range r.Ignored {
		lines = append(lines, styles.Dim.Render("ignore "+f))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	verb := "Created"
	if r.DryRun {
		verb = "Would create"
	}
	summary := fmt.Sprintf("%s %s and %s (%s)", verb,
		util.Plural(len(r.Directories), "directory"),
		util.Plural(len(r.Written), "file"),
		util.FormatSize(r.Bytes))
	if len(r.Skipped) > 0 {
		summary += fmt.Sprintf(", skipped %d existing", len(r.Skipped))
	}
	_, err := fmt.Fprintln(w, styles.Bold.Render(summary))
	return err
}
