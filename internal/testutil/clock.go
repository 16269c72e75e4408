// Package testutil provides deterministic helpers shared by tests.
package testutil

import "time"

// Clock provides a fixed, advanceable "today" for tests.
//
// Streak and status queries take the current date as a parameter; tests use
// Clock to hold that date steady and step it forward day by day, so the
// same scenario always produces identical results.
type Clock struct {
	today time.Time
}

// NewClock creates a clock fixed at the given civil date (UTC midnight).
func NewClock(year int, month time.Month, day int) *Clock {
	return &Clock{today: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the clock's current date.
func (c *Clock) Today() time.Time {
	return c.today
}

// Advance moves the clock forward by n days and returns the new date.
// Negative n moves it backward.
func (c *Clock) Advance(n int) time.Time {
	c.today = c.today.AddDate(0, 0, n)
	return c.today
}

// DaysAgo returns the date n days before the clock's current date without
// moving the clock.
func (c *Clock) DaysAgo(n int) time.Time {
	return c.today.AddDate(0, 0, -n)
}
