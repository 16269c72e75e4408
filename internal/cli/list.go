package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/strideapp/stride/internal/habit"
	"github.com/strideapp/stride/internal/period"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Periodicity string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked habits",
		Long: `List all habits in creation order, optionally filtered by periodicity.

Example:
  stride list
  stride list --periodicity weekly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Periodicity, "periodicity", "", "filter by periodicity (daily|weekly)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	var filter *period.Periodicity
	if opts.Periodicity != "" {
		p, err := period.Parse(opts.Periodicity)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --periodicity", err)
		}
		filter = &p
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx, opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	habits := sess.Registry.Habits(filter)
	if sess.Out.Format == "json" {
		return sess.Out.Success(viewsOf(habits, sess.Today))
	}
	return sess.Out.Success(renderHabits(habits, sess.Today))
}

// habitView is the JSON shape of one habit in listings.
type habitView struct {
	Name          string `json:"name"`
	Periodicity   string `json:"periodicity"`
	CreatedAt     string `json:"created_at"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	Complete      bool   `json:"complete_for_period"`
}

func viewOf(h *habit.Habit, today time.Time) habitView {
	return habitView{
		Name:          h.Name,
		Periodicity:   h.Periodicity.String(),
		CreatedAt:     h.CreatedAt.Format(time.DateOnly),
		CurrentStreak: h.CurrentStreak(today),
		LongestStreak: h.LongestStreak(),
		Complete:      h.CompleteForPeriod(today),
	}
}

func viewsOf(habits []*habit.Habit, today time.Time) []habitView {
	views := make([]habitView, len(habits))
	for i, h := range habits {
		views[i] = viewOf(h, today)
	}
	return views
}

// renderHabits renders the text listing, one habit per line in the original
// tracker's format. Kept separate from command plumbing so golden tests can
// exercise it with a fixed date.
func renderHabits(habits []*habit.Habit, today time.Time) string {
	if len(habits) == 0 {
		return "No habits found."
	}

	var b strings.Builder
	for i, h := range habits {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Habit: %s, Periodicity: %s, Created At: %s, Streak: %d",
			h.Name, h.Periodicity, h.CreatedAt.Format(time.DateOnly), h.CurrentStreak(today))
	}
	return b.String()
}
