// Package cli implements the stride command-line interface.
//
// Commands parse arguments, open the store, load the registry, and render
// results; all habit and streak semantics live in internal/habit.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/strideapp/stride/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database string
	Verbose  bool
	Format   string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the stride CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "stride",
		Short:         "stride - habit tracking with streaks",
		Long:          "A habit tracker: define daily or weekly habits, record completions, and follow your streaks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Config file and environment fill in whatever the flags left
			// at their defaults.
			cfg, err := config.Load()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load configuration", err)
			}
			if !cmd.Flags().Changed("db") {
				opts.Database = cfg.DatabasePath
			}
			if !cmd.Flags().Changed("format") {
				opts.Format = cfg.Format
			}
			if !cmd.Flags().Changed("verbose") {
				opts.Verbose = cfg.Verbose
			}

			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "habits.db", "path to SQLite database")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewCompleteCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewIncompleteCommand(opts))
	cmd.AddCommand(NewStreakCommand(opts))
	cmd.AddCommand(NewLongestStreakCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
