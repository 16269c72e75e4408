package habit

import (
	"time"

	"github.com/strideapp/stride/internal/period"
)

// The streak calculator is stateless: every function here is a pure
// function over a sorted sequence of period keys. Callers obtain the
// sequence from Ledger.Keys(), which guarantees ascending order and no
// duplicate periods. "Today" is an explicit parameter, never the wall
// clock, so results are deterministic under test.

// LongestStreak returns the maximum run of consecutive periods in keys.
//
// A run continues while successive keys are exactly one period apart; any
// larger gap breaks the run and starts a new one. Returns 0 for an empty
// sequence.
func LongestStreak(keys []period.Key, p period.Periodicity) int {
	if len(keys) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(keys); i++ {
		if period.Between(keys[i-1], keys[i], p) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CurrentStreak returns the length of the trailing run ending at the most
// recent completion, or 0 if the habit has lapsed.
//
// A habit lapses once a full period passes with no completion: if the last
// completion is more than one period behind today's period, the streak is
// 0 regardless of history. A completion in the previous period keeps the
// streak alive, so "not yet completed today" does not zero it.
func CurrentStreak(keys []period.Key, p period.Periodicity, today time.Time) int {
	if len(keys) == 0 {
		return 0
	}

	last := keys[len(keys)-1]
	if period.Between(last, period.CurrentKey(today, p), p) > 1 {
		return 0
	}

	run := 1
	for i := len(keys) - 2; i >= 0; i-- {
		if period.Between(keys[i], keys[i+1], p) != 1 {
			break
		}
		run++
	}
	return run
}

// CompleteForPeriod reports whether today's period has a completion.
func CompleteForPeriod(keys []period.Key, p period.Periodicity, today time.Time) bool {
	current := period.CurrentKey(today, p)
	for _, k := range keys {
		if k == current {
			return true
		}
	}
	return false
}
