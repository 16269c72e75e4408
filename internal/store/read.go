package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/strideapp/stride/internal/habit"
	"github.com/strideapp/stride/internal/period"
)

// LoadAllHabits returns every stored habit in insertion (rowid) order, which
// matches creation sequence and keeps listings stable across runs.
func (s *Store) LoadAllHabits(ctx context.Context) ([]habit.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, periodicity, created_at
		FROM habits
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}
	defer rows.Close()

	var records []habit.Record
	for rows.Next() {
		var name, rawPeriodicity, rawCreated string
		if err := rows.Scan(&name, &rawPeriodicity, &rawCreated); err != nil {
			return nil, fmt.Errorf("load habits: scan: %w", err)
		}

		p, err := period.Parse(rawPeriodicity)
		if err != nil {
			return nil, fmt.Errorf("load habits: habit %q: %w", name, err)
		}
		createdAt, err := time.ParseInLocation(time.DateOnly, rawCreated, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("load habits: habit %q: bad created_at %q: %w", name, rawCreated, err)
		}

		records = append(records, habit.Record{
			Name:        name,
			Periodicity: p,
			CreatedAt:   createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}

	return records, nil
}

// LoadCompletions returns a habit's completion dates in ascending order.
// An unknown habit yields an empty slice, not an error.
func (s *Store) LoadCompletions(ctx context.Context, name string) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT completed_on
		FROM completions
		WHERE habit_name = ?
		ORDER BY completed_on ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("load completions: scan: %w", err)
		}
		d, err := time.ParseInLocation(time.DateOnly, raw, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("load completions: habit %q: bad date %q: %w", name, raw, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	return dates, nil
}

// HabitExists reports whether a habit row exists for the given name.
func (s *Store) HabitExists(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM habits WHERE name = ?`, name,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("habit exists: %w", err)
	}
	return true, nil
}
