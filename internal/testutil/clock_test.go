package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_FixedDate(t *testing.T) {
	clock := NewClock(2026, time.August, 29)

	want := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, clock.Today())

	// Today is stable until advanced.
	assert.Equal(t, want, clock.Today())
}

func TestClock_Advance(t *testing.T) {
	clock := NewClock(2026, time.February, 27)

	got := clock.Advance(2)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, clock.Today())

	// Backward movement works too.
	got = clock.Advance(-1)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestClock_DaysAgo(t *testing.T) {
	clock := NewClock(2026, time.January, 2)

	assert.Equal(t, time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC), clock.DaysAgo(3))

	// DaysAgo must not move the clock.
	assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), clock.Today())
}
