package cli

import (
	"github.com/spf13/cobra"
)

// NewIncompleteCommand creates the incomplete command.
func NewIncompleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "incomplete",
		Short: "List habits not yet completed for the current period",
		Long: `List the habits still pending: daily habits with no completion today
and weekly habits with no completion this ISO week.

Example:
  stride incomplete`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncomplete(rootOpts, cmd)
		},
	}
}

func runIncomplete(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	habits := sess.Registry.IncompleteFor(sess.Today)
	if sess.Out.Format == "json" {
		return sess.Out.Success(viewsOf(habits, sess.Today))
	}
	if len(habits) == 0 {
		return sess.Out.Success("All habits are completed for the current period.")
	}
	return sess.Out.Success(renderHabits(habits, sess.Today))
}
