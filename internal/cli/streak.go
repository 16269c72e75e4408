package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStreakCommand creates the streak command.
func NewStreakCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "streak <name>",
		Short: "Show a habit's streaks",
		Long: `Show the longest streak a habit has ever reached, along with the
streak that is currently alive.

Example:
  stride streak "Exercise"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStreak(rootOpts, cmd, args[0])
		},
	}
}

// streakResult is the JSON payload for streak.
type streakResult struct {
	Name          string `json:"name"`
	LongestStreak int    `json:"longest_streak"`
	CurrentStreak int    `json:"current_streak"`
}

func runStreak(opts *RootOptions, cmd *cobra.Command, name string) error {
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

	longest := h.LongestStreak()
	current := h.CurrentStreak(sess.Today)

	if sess.Out.Format == "json" {
		return sess.Out.Success(streakResult{Name: h.Name, LongestStreak: longest, CurrentStreak: current})
	}
	return sess.Out.Success(fmt.Sprintf("Habit '%s': longest streak %d, current streak %d.", h.Name, longest, current))
}

// NewLongestStreakCommand creates the longest-streak command.
func NewLongestStreakCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "longest-streak",
		Short: "Show the longest streak across all habits",
		Long: `Show the habit holding the longest streak ever reached. Ties resolve
by earliest creation date, then by name, so the answer is stable.

Example:
  stride longest-streak`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLongestStreak(rootOpts, cmd)
		},
	}
}

// longestStreakResult is the JSON payload for longest-streak.
type longestStreakResult struct {
	Name          string `json:"name"`
	LongestStreak int    `json:"longest_streak"`
}

func runLongestStreak(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	name, streak := sess.Registry.LongestStreakOverall()

	if sess.Out.Format == "json" {
		return sess.Out.Success(longestStreakResult{Name: name, LongestStreak: streak})
	}
	if name == "" {
		return sess.Out.Success("No habits found.")
	}
	return sess.Out.Success(fmt.Sprintf("Longest streak is %d, held by '%s'.", streak, name))
}
