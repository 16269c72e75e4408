// Package seed populates a registry with sample habits and, optionally, a
// four-week mock completion history. Seed data comes from a built-in
// default set or from a YAML file validated against an embedded CUE schema.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/strideapp/stride/internal/habit"
	"github.com/strideapp/stride/internal/period"
)

// Entry is one habit to create when seeding.
type Entry struct {
	Name        string
	Periodicity period.Periodicity
}

// file is the YAML shape of a seed file. The json tags drive CUE encoding
// during validation and must stay in sync with schema.cue.
type file struct {
	Habits []struct {
		Name        string `yaml:"name" json:"name"`
		Periodicity string `yaml:"periodicity" json:"periodicity"`
	} `yaml:"habits" json:"habits"`
}

// DefaultHabits returns the built-in sample set.
func DefaultHabits() []Entry {
	return []Entry{
		{Name: "Exercise", Periodicity: period.Daily},
		{Name: "Read a book", Periodicity: period.Weekly},
		{Name: "Drink water", Periodicity: period.Daily},
		{Name: "Practice coding", Periodicity: period.Daily},
		{Name: "Clean the house", Periodicity: period.Weekly},
	}
}

// LoadFile reads a YAML seed file, validates it against the embedded CUE
// schema, and returns the declared entries.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	if err := validate(f); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(f.Habits))
	for _, h := range f.Habits {
		p, err := period.Parse(h.Periodicity)
		if err != nil {
			// Unreachable after schema validation; kept so a schema edit
			// cannot silently admit bad values.
			return nil, fmt.Errorf("invalid seed file %s: habit %q: %w", path, h.Name, err)
		}
		entries = append(entries, Entry{Name: h.Name, Periodicity: p})
	}
	return entries, nil
}

// Result summarizes a seeding run.
type Result struct {
	Added   []string
	Skipped []string // already-existing habits, left untouched
}

// Apply creates the given habits in the registry with created_at = today.
// Habits that already exist are skipped, not errors, so seeding is safe to
// repeat. Any other failure aborts immediately.
func Apply(ctx context.Context, reg *habit.Registry, entries []Entry, today time.Time) (*Result, error) {
	res := &Result{}
	for _, e := range entries {
		_, err := reg.AddHabit(ctx, e.Name, e.Periodicity, today)
		switch {
		case err == nil:
			res.Added = append(res.Added, e.Name)
		case habit.IsDuplicateHabit(err):
			res.Skipped = append(res.Skipped, e.Name)
		default:
			return nil, err
		}
	}
	return res, nil
}

// MockHistory records a four-week completion history for every habit in the
// registry, mirroring the original sample data: daily habits get one
// completion per day for 28 days ending today, weekly habits one per week
// for 4 weeks. Periods that already have a completion are skipped.
func MockHistory(ctx context.Context, reg *habit.Registry, today time.Time) error {
	for _, h := range reg.Habits(nil) {
		var dates []time.Time
		switch h.Periodicity {
		case period.Weekly:
			for weeksAgo := 3; weeksAgo >= 0; weeksAgo-- {
				dates = append(dates, today.AddDate(0, 0, -7*weeksAgo))
			}
		default:
			for daysAgo := 27; daysAgo >= 0; daysAgo-- {
				dates = append(dates, today.AddDate(0, 0, -daysAgo))
			}
		}

		for _, d := range dates {
			err := reg.CompleteHabit(ctx, h.Name, d)
			if err != nil && !habit.IsDuplicateCompletion(err) {
				return fmt.Errorf("mock history for %q: %w", h.Name, err)
			}
		}
	}
	return nil
}
