package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/strideapp/stride/internal/habit"
	"github.com/strideapp/stride/internal/period"
	"github.com/strideapp/stride/internal/testutil"
)

// fixtureHabits builds a small registry snapshot with a fixed date so the
// rendered listing is byte-stable.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func fixtureHabits(t *testing.T, clock *testutil.Clock) []*habit.Habit {
	t.Helper()
	created := clock.DaysAgo(9)

	exercise := habit.New("Exercise", period.Daily, created)
	for _, d := range []time.Time{clock.DaysAgo(2), clock.DaysAgo(1), clock.Today()} {
		require.NoError(t, exercise.Ledger().Record(d))
	}

	reading := habit.New("Read a book", period.Weekly, created)
	for _, d := range []time.Time{clock.DaysAgo(7), clock.Today()} {
		require.NoError(t, reading.Ledger().Record(d))
	}

	water := habit.New("Drink water", period.Daily, created)

	return []*habit.Habit{exercise, reading, water}
}

func TestRenderHabits_Golden(t *testing.T) {
	clock := testutil.NewClock(2026, time.April, 10)
	habits := fixtureHabits(t, clock)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list_text", []byte(renderHabits(habits, clock.Today())))
}

func TestRenderHabits_EmptyGolden(t *testing.T) {
	clock := testutil.NewClock(2026, time.April, 10)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list_empty", []byte(renderHabits(nil, clock.Today())))
}

func TestHabitViews_Golden(t *testing.T) {
	clock := testutil.NewClock(2026, time.April, 10)
	habits := fixtureHabits(t, clock)

	data, err := json.MarshalIndent(viewsOf(habits, clock.Today()), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list_json", data)
}
