package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/strideapp/stride/internal/habit"
	"github.com/strideapp/stride/internal/period"
	"github.com/strideapp/stride/internal/store"
)

// session bundles everything a command needs: the open store, the registry
// loaded from it, today's date, and the output formatter. The wall clock is
// read exactly once here; everything below the CLI takes the date as a
// parameter.
type session struct {
	Store    *store.Store
	Registry *habit.Registry
	Today    time.Time
	Out      *OutputFormatter
}

// openSession opens the database and loads the registry.
// Failures are command errors (exit 2): the user pointed stride at a
// database it cannot use.
func openSession(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*session, error) {
	slog.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	reg, err := habit.Load(ctx, st)
	if err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load habits", err)
	}
	slog.Debug("registry loaded", "habits", reg.Len())

	return &session{
		Store:    st,
		Registry: reg,
		Today:    period.DateOf(time.Now()),
		Out: &OutputFormatter{
			Format: opts.Format,
			Writer: cmd.OutOrStdout(),
		},
	}, nil
}

// Close releases the session's database handle.
func (s *session) Close() {
	if err := s.Store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
