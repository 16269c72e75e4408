package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Periodicity
		wantErr bool
	}{
		{"daily", Daily, false},
		{"weekly", Weekly, false},
		{"Daily", "", true},
		{"monthly", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestKeyFor_Daily(t *testing.T) {
	// Time of day must not matter.
	morning := time.Date(2026, time.March, 14, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 14, 23, 59, 59, 0, time.UTC)

	if KeyFor(morning, Daily) != KeyFor(evening, Daily) {
		t.Error("same calendar day should map to the same daily key")
	}

	next := date(2026, time.March, 15)
	if KeyFor(morning, Daily) == KeyFor(next, Daily) {
		t.Error("different days should map to different daily keys")
	}
}

func TestKeyFor_Weekly_MondayStart(t *testing.T) {
	// 2026-03-09 is a Monday; the ISO week runs through Sunday 2026-03-15.
	monday := date(2026, time.March, 9)
	sunday := date(2026, time.March, 15)
	nextMonday := date(2026, time.March, 16)

	wk := KeyFor(monday, Weekly)
	if wk.Start != monday {
		t.Errorf("weekly key start = %v, want the Monday %v", wk.Start, monday)
	}
	if KeyFor(sunday, Weekly) != wk {
		t.Error("Sunday should fall in the same week as the preceding Monday")
	}
	if KeyFor(nextMonday, Weekly) == wk {
		t.Error("next Monday should start a new week")
	}
}

func TestKeyFor_Weekly_YearRollover(t *testing.T) {
	// 2025-12-29 is a Monday; its ISO week spans into January 2026.
	dec29 := date(2025, time.December, 29)
	jan4 := date(2026, time.January, 4) // Sunday, same ISO week
	jan5 := date(2026, time.January, 5) // Monday, next week

	if KeyFor(dec29, Weekly) != KeyFor(jan4, Weekly) {
		t.Error("week spanning the year boundary should map to one key")
	}
	if got := Between(KeyFor(dec29, Weekly), KeyFor(jan5, Weekly), Weekly); got != 1 {
		t.Errorf("Between across year rollover = %d, want 1", got)
	}
}

func TestBetween_Daily(t *testing.T) {
	a := KeyFor(date(2026, time.February, 27), Daily)
	b := KeyFor(date(2026, time.March, 2), Daily)

	if got := Between(a, a, Daily); got != 0 {
		t.Errorf("Between(a, a) = %d, want 0", got)
	}
	if got := Between(a, b, Daily); got != 3 {
		t.Errorf("Between(Feb 27, Mar 2) = %d, want 3 (2026 is not a leap year)", got)
	}
	if got := Between(b, a, Daily); got != -3 {
		t.Errorf("Between(Mar 2, Feb 27) = %d, want -3", got)
	}
}

func TestBetween_Weekly(t *testing.T) {
	a := KeyFor(date(2026, time.March, 11), Weekly) // week of Mon Mar 9
	b := KeyFor(date(2026, time.March, 16), Weekly) // week of Mon Mar 16
	c := KeyFor(date(2026, time.March, 31), Weekly) // week of Mon Mar 30

	if got := Between(a, b, Weekly); got != 1 {
		t.Errorf("adjacent weeks: Between = %d, want 1", got)
	}
	if got := Between(a, c, Weekly); got != 3 {
		t.Errorf("three weeks apart: Between = %d, want 3", got)
	}
}

func TestCurrentKey(t *testing.T) {
	now := time.Date(2026, time.August, 29, 14, 5, 0, 0, time.UTC) // Saturday

	if got := CurrentKey(now, Daily); got.Start != date(2026, time.August, 29) {
		t.Errorf("daily current key = %v, want 2026-08-29", got)
	}
	if got := CurrentKey(now, Weekly); got.Start != date(2026, time.August, 24) {
		t.Errorf("weekly current key = %v, want Monday 2026-08-24", got)
	}
}

func TestKey_String(t *testing.T) {
	k := KeyFor(date(2026, time.January, 5), Daily)
	if got := k.String(); got != "2026-01-05" {
		t.Errorf("String() = %q, want %q", got, "2026-01-05")
	}
}

func TestDateOf_NormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	local := time.Date(2026, time.June, 1, 23, 0, 0, 0, loc)

	got := DateOf(local)
	want := date(2026, time.June, 1)
	if got != want {
		t.Errorf("DateOf preserves the civil date: got %v, want %v", got, want)
	}
}
