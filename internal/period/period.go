// Package period provides calendar arithmetic for habit periods.
//
// A period is the calendar bucket against which one completion is expected:
// a single day for daily habits, an ISO week for weekly habits. Weeks start
// on Monday. This convention is load-bearing: streak math near week
// boundaries depends on it, so it must not change without a data migration.
package period

import (
	"fmt"
	"time"
)

// Periodicity is how often a habit expects a completion.
type Periodicity string

const (
	// Daily habits expect one completion per calendar day.
	Daily Periodicity = "daily"

	// Weekly habits expect one completion per ISO week (Monday-start).
	Weekly Periodicity = "weekly"
)

// ValidPeriodicities defines the allowed periodicity values.
var ValidPeriodicities = map[Periodicity]bool{
	Daily:  true,
	Weekly: true,
}

// Parse converts a string to a Periodicity.
// Returns an error for anything other than "daily" or "weekly".
func Parse(s string) (Periodicity, error) {
	p := Periodicity(s)
	if !ValidPeriodicities[p] {
		return "", fmt.Errorf("invalid periodicity %q: must be %q or %q", s, Daily, Weekly)
	}
	return p, nil
}

// String implements fmt.Stringer.
func (p Periodicity) String() string {
	return string(p)
}

// Key is the canonical identifier for a period.
//
// It is represented as the UTC midnight of the period's first day: the date
// itself for Daily, the Monday of the ISO week for Weekly. Two dates map to
// the same Key iff they fall in the same period. Key is comparable and safe
// to use as a map key because every Key is built via time.Date in UTC.
type Key struct {
	// Start is the first day of the period, at UTC midnight.
	Start time.Time
}

// String renders the key's start date as YYYY-MM-DD.
func (k Key) String() string {
	return k.Start.Format(time.DateOnly)
}

// IsZero reports whether the key is the zero value.
func (k Key) IsZero() bool {
	return k.Start.IsZero()
}

// DateOf truncates a timestamp to its civil date at UTC midnight.
// All period math operates on dates produced by this function.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// KeyFor maps a date to its period bucket.
func KeyFor(date time.Time, p Periodicity) Key {
	day := DateOf(date)
	if p == Weekly {
		// Back up to Monday. Weekday() is Sunday=0, so Monday maps to
		// offset 0, Sunday to offset 6.
		offset := (int(day.Weekday()) + 6) % 7
		day = day.AddDate(0, 0, -offset)
	}
	return Key{Start: day}
}

// CurrentKey returns the bucket containing now. The current time is always
// passed in by the caller so that streak and status queries stay
// deterministic under test.
func CurrentKey(now time.Time, p Periodicity) Key {
	return KeyFor(now, p)
}

// Between returns the number of whole periods from a to b: 0 if the keys
// are equal, 1 if b is the period immediately after a, negative if b
// precedes a. Year rollovers need no special casing because keys are plain
// dates.
func Between(a, b Key, p Periodicity) int {
	days := int(b.Start.Sub(a.Start).Hours() / 24)
	if p == Weekly {
		return days / 7
	}
	return days
}
