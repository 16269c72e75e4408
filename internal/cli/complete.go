package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// CompleteOptions holds flags for the complete command.
type CompleteOptions struct {
	*RootOptions
	Date string
}

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "complete <name>",
		Short: "Mark a habit as completed",
		Long: `Record a completion for a habit, by default for today.

At most one completion is recorded per period (per day for daily habits,
per ISO week for weekly ones); completing an already-completed period
fails and changes nothing.

Example:
  stride complete "Exercise"
  stride complete "Exercise" --date 2026-08-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComplete(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "completion date (YYYY-MM-DD, default today)")

	return cmd
}

func runComplete(opts *CompleteOptions, cmd *cobra.Command, name string) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	date := sess.Today
	if opts.Date != "" {
		date, err = time.ParseInLocation(time.DateOnly, opts.Date, time.UTC)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --date, expected YYYY-MM-DD", err)
		}
	}

	if err := sess.Registry.CompleteHabit(ctx, name, date); err != nil {
		return fail(sess.Out, err)
	}

	return sess.Out.Success(fmt.Sprintf("Habit '%s' marked as completed for %s.", name, date.Format(time.DateOnly)))
}
