package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/strideapp/stride/internal/seed"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	File string
	Mock bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample habits",
		Long: `Create the built-in sample habits, or the habits declared in a YAML
seed file. Habits that already exist are skipped, so seeding is safe to
repeat. With --mock, a four-week completion history is generated for
every habit: one completion per day for daily habits, one per week for
weekly ones.

Example:
  stride seed
  stride seed --mock
  stride seed --file my-habits.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "YAML seed file (default: built-in sample habits)")
	cmd.Flags().BoolVar(&opts.Mock, "mock", false, "generate a four-week mock completion history")

	return cmd
}

// seedResult is the JSON payload for seed.
type seedResult struct {
	Added   []string `json:"added"`
	Skipped []string `json:"skipped,omitempty"`
	Mocked  bool     `json:"mocked"`
}

func runSeed(opts *SeedOptions, cmd *cobra.Command) error {
	entries := seed.DefaultHabits()
	if opts.File != "" {
		var err error
		entries, err = seed.LoadFile(opts.File)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load seed file", err)
		}
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx, opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	res, err := seed.Apply(ctx, sess.Registry, entries, sess.Today)
	if err != nil {
		return fail(sess.Out, err)
	}
	slog.Debug("habits seeded", "added", len(res.Added), "skipped", len(res.Skipped))

	if opts.Mock {
		if err := seed.MockHistory(ctx, sess.Registry, sess.Today); err != nil {
			return fail(sess.Out, err)
		}
	}

	if sess.Out.Format == "json" {
		return sess.Out.Success(seedResult{Added: res.Added, Skipped: res.Skipped, Mocked: opts.Mock})
	}

	msg := fmt.Sprintf("Seeded %d habit(s), skipped %d already present.", len(res.Added), len(res.Skipped))
	if opts.Mock {
		msg += " Mock completion data has been added."
	}
	return sess.Out.Success(msg)
}
