package cli

import (
	"github.com/spf13/cobra"
)

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all habits and completions",
		Long: `Remove every habit and every completion record from the database.
The schema stays in place, so the database remains usable.

Example:
  stride clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(rootOpts, cmd)
		},
	}
}

func runClear(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.Store.Clear(ctx); err != nil {
		return fail(sess.Out, err)
	}

	return sess.Out.Success("Database cleared: All habits and completions have been deleted.")
}
