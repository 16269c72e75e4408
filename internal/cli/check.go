package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <name>",
		Short: "Check whether a habit is completed for the current period",
		Long: `Report whether a habit has a completion recorded for today (daily
habits) or for the current ISO week (weekly habits).

Example:
  stride check "Exercise"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, args[0])
		},
	}
}

// checkResult is the JSON payload for check.
type checkResult struct {
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

func runCheck(opts *RootOptions, cmd *cobra.Command, name string) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	h, err := sess.Registry.Get(name)
	if err != nil {
		return fail(sess.Out, err)
	}

	if sess.Out.Format == "json" {
		return sess.Out.Success(checkResult{Name: h.Name, Complete: h.CompleteForPeriod(sess.Today)})
	}

	if h.CompleteForPeriod(sess.Today) {
		return sess.Out.Success(fmt.Sprintf("Habit '%s' has already been completed for this period.", h.Name))
	}
	return sess.Out.Success(fmt.Sprintf("Habit '%s' has NOT been completed for this period.", h.Name))
}
