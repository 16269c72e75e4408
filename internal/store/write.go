package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strideapp/stride/internal/habit"
	"github.com/strideapp/stride/internal/period"
)

// PersistHabit inserts a habit row.
//
// The registry checks name uniqueness before calling here, so a PRIMARY KEY
// conflict is not expected; if one occurs anyway (hand-edited database,
// concurrent writer) it surfaces as an error rather than being swallowed.
func (s *Store) PersistHabit(ctx context.Context, rec habit.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habits (name, periodicity, created_at)
		VALUES (?, ?, ?)
	`,
		rec.Name,
		string(rec.Periodicity),
		rec.CreatedAt.Format(time.DateOnly),
	)
	if err != nil {
		return fmt.Errorf("persist habit: %w", err)
	}
	return nil
}

// PersistCompletion inserts one completion row for a habit.
//
// The period_start column is derived from the habit's stored periodicity so
// that UNIQUE(habit_name, period_start) enforces one-completion-per-period
// at the storage layer even if the in-memory ledger check was bypassed.
// Completion ids are random UUIDs; recorded_at captures the write instant
// for auditing only and is never read back by streak logic.
func (s *Store) PersistCompletion(ctx context.Context, name string, date time.Time) error {
	var rawPeriodicity string
	err := s.db.QueryRowContext(ctx,
		`SELECT periodicity FROM habits WHERE name = ?`, name,
	).Scan(&rawPeriodicity)
	if err == sql.ErrNoRows {
		return fmt.Errorf("persist completion: habit %q not stored", name)
	}
	if err != nil {
		return fmt.Errorf("persist completion: %w", err)
	}

	p, err := period.Parse(rawPeriodicity)
	if err != nil {
		return fmt.Errorf("persist completion: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO completions (id, habit_name, completed_on, period_start, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		uuid.NewString(),
		name,
		period.DateOf(date).Format(time.DateOnly),
		period.KeyFor(date, p).String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("persist completion: %w", err)
	}
	return nil
}

// DeleteHabit removes a habit and all its completion records in a single
// transaction, so the cascade is both-or-neither. Deleting an absent habit
// is a no-op at this layer; the registry reports HABIT_NOT_FOUND before
// calling here.
func (s *Store) DeleteHabit(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete habit: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, `DELETE FROM completions WHERE habit_name = ?`, name); err != nil {
		return fmt.Errorf("delete habit: completions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM habits WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete habit: commit: %w", err)
	}
	return nil
}

// Clear removes every habit and completion, leaving the schema in place.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clear: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM completions`); err != nil {
		return fmt.Errorf("clear completions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM habits`); err != nil {
		return fmt.Errorf("clear habits: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("clear: commit: %w", err)
	}
	return nil
}
