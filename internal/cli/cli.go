// Package cli provides the command-line interface for treescaffold.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holonoms/treescaffold/internal/config"
	"github.com/holonoms/treescaffold/internal/logging"
	"github.com/holonoms/treescaffold/internal/ui"
)

var (
	// Default version for development/non-release builds
	// GoReleaser overrides this for release builds with the git tag.
	version = "dev"
)

// NewRootCmd creates the root command with all subcommands
func NewRootCmd(opts *Options) *cobra.Command {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()

	var (
		indentUnit int
		inferDirs  bool
	)

	parseCmd := newParseCmd(opts)

	rootCmd := &cobra.Command{
		Use:   "treescaffold [file]",
		Short: "Turn directory-tree diagrams into files",
		Long: "treescaffold reads a directory-tree diagram (as drawn by tree, or by hand)\n" +
			"and lists, plans or creates the files it describes. Input is read from\n" +
			"the named file, or from stdin when the file is omitted or \"-\".",
		Version:      version,
		SilenceUsage: true,
		// NB: ArbitraryArgs keeps `treescaffold layout.txt` from being read as a
		// subcommand; the argument count is checked by the parse command.
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("indent-unit") {
				opts.IndentUnit = &indentUnit
			}
			if cmd.Flags().Changed("infer-dirs") {
				opts.InferDirs = &inferDirs
			}
			return setup(cmd, opts)
		},
		// When no subcommand is supplied, execute the parse command
		RunE: parseCmd.RunE,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.Color, "color", opts.Color, "Colored output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&opts.ProjectDir, "project", opts.ProjectDir, "Directory holding the project configuration")
	rootCmd.PersistentFlags().BoolVarP(&opts.Markdown, "markdown", "m", false, "Extract the diagram from a Markdown document")
	rootCmd.PersistentFlags().IntVar(&indentUnit, "indent-unit", 0, "Columns per nesting level (0 estimates it)")
	rootCmd.PersistentFlags().BoolVar(&inferDirs, "infer-dirs", false, "Treat names followed by deeper lines as directories")
	addParseFlags(rootCmd, opts)

	// Add commands
	rootCmd.AddCommand(
		parseCmd,
		newDirsCmd(opts),
		newScaffoldCmd(opts),
		newExtractCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}

// setup loads configuration and attaches the logger and styles used by
// every command.
func setup(cmd *cobra.Command, opts *Options) error {
	if !ui.ValidColorMode(opts.Color) {
		return fmt.Errorf("invalid color mode %q: use auto, always or never", opts.Color)
	}

	cfg, err := config.New(opts.ProjectDir)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	opts.cfg = cfg

	level := "info"
	if cfg.Has("log.level") {
		level = cfg.Get("log.level")
	}
	if opts.Debug {
		level = "debug"
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	logger.Debug("configuration loaded", logging.FieldConfig, opts.ProjectDir, "keys", len(cfg.GetAllKeys()))

	opts.styles = ui.NewStyles(ui.IsColorEnabled(opts.Color, cmd.OutOrStdout()))
	return nil
}
