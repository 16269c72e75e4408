// Package habit implements the streak and completion-tracking engine: the
// domain representation of a habit, its per-period completion ledger, the
// streak calculator, and the registry that orchestrates them over an
// injected storage collaborator.
package habit

import (
	"sort"
	"time"

	"github.com/strideapp/stride/internal/period"
)

// Habit is a tracked habit composed with its completion ledger.
//
// Name is unique across the registry (after CanonicalName normalization),
// and CreatedAt is fixed at creation. Habits are mutated only through
// Registry operations.
type Habit struct {
	// Name uniquely identifies the habit. Case-sensitive, trimmed.
	Name string

	// Periodicity is how often a completion is expected.
	Periodicity period.Periodicity

	// CreatedAt is the civil creation date, immutable after creation.
	CreatedAt time.Time

	ledger *Ledger
}

// New creates a habit with an empty ledger.
// The name must already be canonicalized and non-empty; Registry.AddHabit
// enforces that before calling here.
func New(name string, p period.Periodicity, createdAt time.Time) *Habit {
	return &Habit{
		Name:        name,
		Periodicity: p,
		CreatedAt:   period.DateOf(createdAt),
		ledger:      NewLedger(p),
	}
}

// Ledger returns the habit's completion ledger.
func (h *Habit) Ledger() *Ledger {
	return h.ledger
}

// LongestStreak returns the longest run of consecutive completed periods
// anywhere in the habit's history.
func (h *Habit) LongestStreak() int {
	return LongestStreak(h.ledger.Keys(), h.Periodicity)
}

// CurrentStreak returns the length of the streak that is still alive as of
// today, or 0 if the habit has lapsed.
func (h *Habit) CurrentStreak(today time.Time) int {
	return CurrentStreak(h.ledger.Keys(), h.Periodicity, today)
}

// CompleteForPeriod reports whether the habit has a completion recorded for
// the period containing today.
func (h *Habit) CompleteForPeriod(today time.Time) bool {
	return h.ledger.Has(period.CurrentKey(today, h.Periodicity))
}

// Ledger is an append-only, per-habit set of completions, keyed by period
// so that at most one completion exists per period. The map key enforces
// the uniqueness invariant structurally rather than by check-then-insert.
type Ledger struct {
	periodicity period.Periodicity
	entries     map[period.Key]time.Time // period -> completed_on date
}

// NewLedger creates an empty ledger for the given periodicity.
func NewLedger(p period.Periodicity) *Ledger {
	return &Ledger{
		periodicity: p,
		entries:     make(map[period.Key]time.Time),
	}
}

// Record inserts a completion for the given date's period.
// Returns a DUPLICATE_COMPLETION error and leaves the ledger unchanged if
// the period already has a completion.
func (l *Ledger) Record(date time.Time) error {
	key := period.KeyFor(date, l.periodicity)
	if _, ok := l.entries[key]; ok {
		return NewDuplicateCompletionError("", key.String())
	}
	l.entries[key] = period.DateOf(date)
	return nil
}

// Has reports whether the given period already has a completion.
func (l *Ledger) Has(key period.Key) bool {
	_, ok := l.entries[key]
	return ok
}

// Keys returns all period keys in ascending chronological order.
func (l *Ledger) Keys() []period.Key {
	keys := make([]period.Key, 0, len(l.entries))
	for k := range l.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Start.Before(keys[j].Start)
	})
	return keys
}

// Dates returns the recorded completion dates in ascending order.
// Used when persisting or rendering the raw history.
func (l *Ledger) Dates() []time.Time {
	dates := make([]time.Time, 0, len(l.entries))
	for _, d := range l.entries {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// Len returns the number of completed periods.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// IsEmpty reports whether the ledger has no completions.
func (l *Ledger) IsEmpty() bool {
	return len(l.entries) == 0
}
