package core

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestPeriodRange(t *testing.T) {
	// Wednesday 2024-01-17, mid-afternoon
	now := date(2024, time.January, 17, 15, 30, 0)

	cases := []struct {
		name  string
		p     Period
		start time.Time
		end   time.Time
	}{
		{
			name:  "today",
			p:     Period{Kind: PeriodToday},
			start: date(2024, time.January, 17, 0, 0, 0),
			end:   date(2024, time.January, 18, 0, 0, 0).Add(-time.Millisecond),
		},
		{
			name:  "this week starts monday",
			p:     Period{Kind: PeriodThisWeek},
			start: date(2024, time.January, 15, 0, 0, 0),
			end:   date(2024, time.January, 22, 0, 0, 0).Add(-time.Millisecond),
		},
		{
			name:  "this month",
			p:     Period{Kind: PeriodThisMonth},
			start: date(2024, time.January, 1, 0, 0, 0),
			end:   date(2024, time.February, 1, 0, 0, 0).Add(-time.Millisecond),
		},
		{
			name:  "custom snaps to day bounds",
			p:     Custom(date(2024, time.January, 1, 9, 15, 0), date(2024, time.January, 2, 9, 15, 0)),
			start: date(2024, time.January, 1, 0, 0, 0),
			end:   date(2024, time.January, 2, 23, 59, 59),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.p.Range(now)
			if !start.Equal(tc.start) {
				t.Errorf("start: expected %v, got %v", tc.start, start)
			}
			if !end.Equal(tc.end) {
				t.Errorf("end: expected %v, got %v", tc.end, end)
			}
		})
	}
}

func TestPeriodRangeWeekSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	now := date(2024, time.January, 21, 8, 0, 0)
	start, _ := Period{Kind: PeriodThisWeek}.Range(now)
	if expected := date(2024, time.January, 15, 0, 0, 0); !start.Equal(expected) {
		t.Fatalf("expected week start %v, got %v", expected, start)
	}
}

func TestPeriodContainsBoundaries(t *testing.T) {
	now := date(2024, time.January, 17, 12, 0, 0)

	cases := []struct {
		name string
		p    Period
		t    time.Time
		in   bool
	}{
		{"exactly at start of today", Period{Kind: PeriodToday}, date(2024, time.January, 17, 0, 0, 0), true},
		{"last ms of today", Period{Kind: PeriodToday}, date(2024, time.January, 18, 0, 0, 0).Add(-time.Millisecond), true},
		{"next midnight excluded", Period{Kind: PeriodToday}, date(2024, time.January, 18, 0, 0, 0), false},
		{"custom end second included", Custom(date(2024, time.January, 1, 0, 0, 0), date(2024, time.January, 1, 0, 0, 0)), date(2024, time.January, 1, 23, 59, 59), true},
		{"day after custom end excluded", Custom(date(2024, time.January, 1, 0, 0, 0), date(2024, time.January, 1, 0, 0, 0)), date(2024, time.January, 2, 0, 0, 0), false},
		{"all includes far past", Period{Kind: PeriodAll}, date(1970, time.January, 1, 0, 0, 0), true},
		{"all includes far future", Period{Kind: PeriodAll}, date(3024, time.June, 1, 0, 0, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Contains(tc.t, now); got != tc.in {
				t.Errorf("Contains(%v) = %v, expected %v", tc.t, got, tc.in)
			}
		})
	}
}

func TestParsePeriodKind(t *testing.T) {
	if k, err := ParsePeriodKind(""); err != nil || k != PeriodAll {
		t.Fatalf("empty input should default to all, got %q (err=%v)", k, err)
	}
	if _, err := ParsePeriodKind("fortnight"); err == nil {
		t.Fatal("expected error for unknown period")
	}
}
