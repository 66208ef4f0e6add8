package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/holonoms/treescaffold/internal/config"
	"github.com/holonoms/treescaffold/internal/logging"
)

// ConfigOption represents a configuration option
type ConfigOption struct {
	Key         string
	Description string
	Default     string
	ValidValues []string // For enumerated values like true/false
	Validator   func(string) error
}

// Registry of all available configuration options
var configOptions = []ConfigOption{
	{
		Key:         "parser.indent_unit",
		Description: "Columns per nesting level; 0 estimates it from the diagram",
		Default:     "0",
		Validator:   validateIndentUnit,
	},
	{
		Key:         "parser.infer_dirs",
		Description: "Treat names followed by deeper lines as directories",
		Default:     "false",
		ValidValues: []string{"true", "false"},
		Validator:   validateBoolOption,
	},
	{
		Key:         "scaffold.force",
		Description: "Overwrite existing files when scaffolding",
		Default:     "false",
		ValidValues: []string{"true", "false"},
		Validator:   validateBoolOption,
	},
	{
		Key:         "scaffold.dir_mode",
		Description: "Octal permissions of created directories",
		Default:     "755",
		Validator:   validatePermOption,
	},
	{
		Key:         "scaffold.file_mode",
		Description: "Octal permissions of created files",
		Default:     "644",
		Validator:   validatePermOption,
	},
	{
		Key:         "log.level",
		Description: "Log level: debug, info, warn or error (global)",
		Default:     "info",
		ValidValues: []string{"debug", "info", "warn", "error"},
		Validator:   validateLogLevel,
	},
}

// MARK: Sub-commands

// newConfigCmd creates the config command and its subcommands
func newConfigCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage project configuration",
	}

	// Add subcommands
	cmd.AddCommand(
		newConfigListCmd(opts),
		newConfigGetCmd(opts),
		newConfigSetCmd(opts),
		newConfigUnsetCmd(opts),
	)

	return cmd
}

func newConfigListCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			cfg := opts.cfg

			fmt.Fprintln(w, "Available configuration options:")
			fmt.Fprintln(w)

			for _, option := range configOptions {
				fmt.Fprintf(w, "  %s\n", opts.styles.Bold.Render(option.Key))
				fmt.Fprintf(w, "    Description: %s\n", option.Description)
				fmt.Fprintf(w, "    Default: %s\n", option.Default)
				fmt.Fprintf(w, "    Environment: %s\n", config.EnvName(option.Key))

				if cfg.Has(option.Key) {
					fmt.Fprintf(w, "    Current: %s\n", cfg.Get(option.Key))
				} else {
					fmt.Fprintf(w, "    Current: %s (default)\n", opts.styles.Dim.Render(option.Default))
				}
				fmt.Fprintln(w)
			}

			return nil
		},
	}

	return cmd
}

func newConfigSetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			option := findConfigOption(key)
			if option == nil {
				return unknownOption(key)
			}

			if option.Validator != nil {
				if err := option.Validator(value); err != nil {
					return fmt.Errorf("invalid value for %s: %w", key, err)
				}
			}

			if err := opts.cfg.Set(key, value); err != nil {
				return fmt.Errorf("unable to set config: %w", err)
			}

			logging.FromContext(cmd.Context()).Debug("config updated", "key", key, "global", opts.cfg.IsGlobalKey(key))
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
		ValidArgsFunction: func(
			cmd *cobra.Command,
			args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			// For values, provide common completions based on the key
			if len(args) == 1 {
				option := findConfigOption(args[0])
				if option != nil && len(option.ValidValues) > 0 {
					return option.ValidValues, cobra.ShellCompDirectiveNoFileComp
				}
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func newConfigGetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			option := findConfigOption(key)
			if option == nil {
				return unknownOption(key)
			}

			w := cmd.OutOrStdout()
			if !opts.cfg.Has(key) {
				fmt.Fprintf(w, "%s = %s (default)\n", key, option.Default)
				return nil
			}

			fmt.Fprintf(w, "%s = %s\n", key, opts.cfg.Get(key))
			return nil
		},
		ValidArgsFunction: completeKeys,
	}

	return cmd
}

func newConfigUnsetCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if findConfigOption(key) == nil {
				return unknownOption(key)
			}

			if err := opts.cfg.Delete(key); err != nil {
				return fmt.Errorf("unable to unset config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)
			return nil
		},
		ValidArgsFunction: completeKeys,
	}

	return cmd
}

// MARK: Helpers

// findConfigOption finds a config option by key
func findConfigOption(key string) *ConfigOption {
	for i := range configOptions {
		if configOptions[i].Key == key {
			return &configOptions[i]
		}
	}
	return nil
}

func configOptionsKeys() []string {
	var keys []string
	for _, option := range configOptions {
		keys = append(keys, option.Key)
	}
	return keys
}

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return configOptionsKeys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func unknownOption(key string) error {
	return fmt.Errorf("unknown configuration option: %s\n\nRun 'treescaffold config list' to see available options", key)
}

// MARK: Validators

// validateBoolOption validates that a value is either "true" or "false"
func validateBoolOption(value string) error {
	if value != "true" && value != "false" {
		return fmt.Errorf("value must be either 'true' or 'false', got: %s", value)
	}
	return nil
}

func validateIndentUnit(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("value must be a non-negative integer, got: %s", value)
	}
	return nil
}

func validatePermOption(value string) error {
	_, err := parsePerm(value)
	return err
}

func validateLogLevel(value string) error {
	if !logging.ValidLevel(value) {
		return fmt.Errorf("value must be one of debug, info, warn or error, got: %s", value)
	}
	return nil
}
