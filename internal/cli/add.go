package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strideapp/stride/internal/period"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <periodicity>",
		Short: "Add a new habit",
		Long: `Add a habit to track, with a daily or weekly periodicity.

Example:
  stride add "Exercise" daily
  stride add "Grocery shopping" weekly`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args[0], args[1])
		},
	}
}

func runAdd(opts *RootOptions, cmd *cobra.Command, name, rawPeriodicity string) error {
	p, err := period.Parse(rawPeriodicity)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid periodicity", err)
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	h, err := sess.Registry.AddHabit(ctx, name, p, sess.Today)
	if err != nil {
		return fail(sess.Out, err)
	}

	return sess.Out.Success(fmt.Sprintf("Habit '%s' added with a periodicity of '%s'.", h.Name, h.Periodicity))
}
