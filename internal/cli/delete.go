package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a habit and all its completions",
		Long: `Remove a habit and its entire completion history. The removal is
atomic: either the habit and all its records go, or nothing does.

Example:
  stride delete "Exercise"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, cmd, args[0])
		},
	}
}

func runDelete(opts *RootOptions, cmd *cobra.Command, name string) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.Registry.DeleteHabit(ctx, name); err != nil {
		return fail(sess.Out, err)
	}

	return sess.Out.Success(fmt.Sprintf("Habit '%s' and its completions have been deleted.", name))
}
