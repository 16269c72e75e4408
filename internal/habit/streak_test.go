package habit

import (
	"testing"
	"time"

	"github.com/strideapp/stride/internal/period"
	"github.com/strideapp/stride/internal/testutil"
)

// keysFor builds a sorted key sequence from completion dates via a ledger,
// the same path production code uses.
func keysFor(t *testing.T, p period.Periodicity, dates ...time.Time) []period.Key {
	t.Helper()
	l := NewLedger(p)
	for _, d := range dates {
		if err := l.Record(d); err != nil {
			t.Fatalf("Record(%v) failed: %v", d, err)
		}
	}
	return l.Keys()
}

func TestLongestStreak_Empty(t *testing.T) {
	if got := LongestStreak(nil, period.Daily); got != 0 {
		t.Errorf("LongestStreak(empty) = %d, want 0", got)
	}
}

func TestLongestStreak_SingleCompletion(t *testing.T) {
	clock := testutil.NewClock(2026, time.May, 10)
	keys := keysFor(t, period.Daily, clock.Today())

	if got := LongestStreak(keys, period.Daily); got != 1 {
		t.Errorf("LongestStreak(single) = %d, want 1", got)
	}
}

func TestLongestStreak_ConsecutiveDays(t *testing.T) {
	clock := testutil.NewClock(2026, time.May, 3)
	keys := keysFor(t, period.Daily, clock.DaysAgo(2), clock.DaysAgo(1), clock.Today())

	if got := LongestStreak(keys, period.Daily); got != 3 {
		t.Errorf("LongestStreak(days 1,2,3) = %d, want 3", got)
	}
}

func TestLongestStreak_GapBreaksRun(t *testing.T) {
	// Days 1,2, gap, day 5: the run ending at day 2 has length 2, day 5
	// starts a fresh run of length 1.
	clock := testutil.NewClock(2026, time.May, 5)
	keys := keysFor(t, period.Daily, clock.DaysAgo(4), clock.DaysAgo(3), clock.Today())

	if got := LongestStreak(keys, period.Daily); got != 2 {
		t.Errorf("LongestStreak(1,2,gap,5) = %d, want 2", got)
	}
}

func TestLongestStreak_HistoricalRunWins(t *testing.T) {
	// A long historical run beats a shorter recent one.
	clock := testutil.NewClock(2026, time.July, 20)
	keys := keysFor(t, period.Daily,
		clock.DaysAgo(20), clock.DaysAgo(19), clock.DaysAgo(18), clock.DaysAgo(17),
		clock.DaysAgo(1), clock.Today(),
	)

	if got := LongestStreak(keys, period.Daily); got != 4 {
		t.Errorf("LongestStreak = %d, want the historical 4", got)
	}
}

func TestLongestStreak_Weekly(t *testing.T) {
	// Four consecutive ISO weeks, then a skipped week, then one more.
	clock := testutil.NewClock(2026, time.June, 17) // Wednesday
	keys := keysFor(t, period.Weekly,
		clock.DaysAgo(35), clock.DaysAgo(28), clock.DaysAgo(21), clock.DaysAgo(14),
		clock.Today(),
	)

	if got := LongestStreak(keys, period.Weekly); got != 4 {
		t.Errorf("LongestStreak(weekly) = %d, want 4", got)
	}
}

func TestCurrentStreak_Empty(t *testing.T) {
	clock := testutil.NewClock(2026, time.May, 10)
	if got := CurrentStreak(nil, period.Daily, clock.Today()); got != 0 {
		t.Errorf("CurrentStreak(empty) = %d, want 0", got)
	}
}

func TestCurrentStreak_AliveThroughToday(t *testing.T) {
	clock := testutil.NewClock(2026, time.May, 3)
	keys := keysFor(t, period.Daily, clock.DaysAgo(2), clock.DaysAgo(1), clock.Today())

	if got := CurrentStreak(keys, period.Daily, clock.Today()); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
}

func TestCurrentStreak_GapBeforeToday(t *testing.T) {
	// Days 1,2, gap, 5 with today = 5: only day 5 counts.
	clock := testutil.NewClock(2026, time.May, 5)
	keys := keysFor(t, period.Daily, clock.DaysAgo(4), clock.DaysAgo(3), clock.Today())

	if got := CurrentStreak(keys, period.Daily, clock.Today()); got != 1 {
		t.Errorf("CurrentStreak(1,2,gap,5) = %d, want 1", got)
	}
}

func TestCurrentStreak_NotYetCompletedToday(t *testing.T) {
	// Completed yesterday, nothing yet today: the streak is tolerated, not
	// zeroed, until a full period passes with no completion.
	clock := testutil.NewClock(2026, time.May, 10)
	keys := keysFor(t, period.Daily, clock.DaysAgo(3), clock.DaysAgo(2), clock.DaysAgo(1))

	if got := CurrentStreak(keys, period.Daily, clock.Today()); got != 3 {
		t.Errorf("CurrentStreak(ending yesterday) = %d, want 3", got)
	}
	if CompleteForPeriod(keys, period.Daily, clock.Today()) {
		t.Error("CompleteForPeriod should be false with no completion today")
	}
}

func TestCurrentStreak_Lapsed(t *testing.T) {
	// Last completion 3 days ago: a full day was skipped, streak is 0.
	clock := testutil.NewClock(2026, time.May, 10)
	keys := keysFor(t, period.Daily, clock.DaysAgo(5), clock.DaysAgo(4), clock.DaysAgo(3))

	if got := CurrentStreak(keys, period.Daily, clock.Today()); got != 0 {
		t.Errorf("CurrentStreak(lapsed) = %d, want 0", got)
	}
}

func TestCurrentStreak_WeeklyLastWeekStillAlive(t *testing.T) {
	// Weekly habit completed last week but not yet this week: alive.
	clock := testutil.NewClock(2026, time.June, 18) // Thursday
	keys := keysFor(t, period.Weekly, clock.DaysAgo(21), clock.DaysAgo(14), clock.DaysAgo(7))

	if got := CurrentStreak(keys, period.Weekly, clock.Today()); got != 3 {
		t.Errorf("CurrentStreak(weekly, ended last week) = %d, want 3", got)
	}
}

func TestCurrentStreak_WeeklyLapsed(t *testing.T) {
	// Last completion two ISO weeks back: one whole week skipped.
	clock := testutil.NewClock(2026, time.June, 18)
	keys := keysFor(t, period.Weekly, clock.DaysAgo(21), clock.DaysAgo(14))

	if got := CurrentStreak(keys, period.Weekly, clock.Today()); got != 0 {
		t.Errorf("CurrentStreak(weekly lapsed) = %d, want 0", got)
	}
}

func TestCompleteForPeriod(t *testing.T) {
	clock := testutil.NewClock(2026, time.May, 10)

	done := keysFor(t, period.Daily, clock.Today())
	if !CompleteForPeriod(done, period.Daily, clock.Today()) {
		t.Error("completed today should report complete")
	}

	pending := keysFor(t, period.Daily, clock.DaysAgo(1))
	if CompleteForPeriod(pending, period.Daily, clock.Today()) {
		t.Error("completed only yesterday should not report complete")
	}

	// Weekly: any day of the current ISO week counts.
	weekly := keysFor(t, period.Weekly, clock.DaysAgo(2))
	if !CompleteForPeriod(weekly, period.Weekly, clock.Today()) {
		t.Error("completion earlier in the same week should report complete")
	}
}

func TestLongestAtLeastCurrent(t *testing.T) {
	// Property from the design: for every non-empty ledger,
	// longest >= current.
	clock := testutil.NewClock(2026, time.May, 20)
	histories := [][]time.Time{
		{clock.Today()},
		{clock.DaysAgo(1)},
		{clock.DaysAgo(2), clock.DaysAgo(1), clock.Today()},
		{clock.DaysAgo(9), clock.DaysAgo(8), clock.DaysAgo(7), clock.DaysAgo(1), clock.Today()},
		{clock.DaysAgo(30), clock.DaysAgo(15), clock.DaysAgo(3)},
	}

	for i, dates := range histories {
		keys := keysFor(t, period.Daily, dates...)
		longest := LongestStreak(keys, period.Daily)
		current := CurrentStreak(keys, period.Daily, clock.Today())
		if longest < current {
			t.Errorf("history %d: longest %d < current %d", i, longest, current)
		}
	}
}
