package core

import (
	"errors"
	"time"
)

// PeriodKind names a date-range predicate used to select expenses for
// display and aggregation.
type PeriodKind string

const (
	PeriodAll       PeriodKind = "all"
	PeriodToday     PeriodKind = "today"
	PeriodThisWeek  PeriodKind = "week"
	PeriodThisMonth PeriodKind = "month"
	PeriodCustom    PeriodKind = "custom"
)

var ErrInvalidPeriod = errors.New("invalid period")

// Period is a named date-range filter. From and To are only consulted
// for PeriodCustom and are interpreted as calendar days: the range runs
// from 00:00:00 of From's day to 23:59:59 of To's day.
type Period struct {
	Kind PeriodKind
	From time.Time
	To   time.Time
}

// ParsePeriodKind validates a period name from user input.
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch PeriodKind(s) {
	case PeriodAll, PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodCustom:
		return PeriodKind(s), nil
	case "":
		return PeriodAll, nil
	}
	return "", ErrInvalidPeriod
}

// Custom builds a custom period over the closed day interval [from, to].
func Custom(from, to time.Time) Period {
	return Period{Kind: PeriodCustom, From: from, To: to}
}

// Range resolves the period to a closed instant interval [start, end]
// relative to the reference instant now. The preset periods end 1ms
// before the next boundary so an expense stamped exactly at the next
// midnight falls into the following period.
func (p Period) Range(now time.Time) (start, end time.Time) {
	switch p.Kind {
	case PeriodToday:
		start = midnight(now)
		end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	case PeriodThisWeek:
		start = mondayMidnight(now)
		end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	case PeriodThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	case PeriodCustom:
		start = midnight(p.From)
		end = time.Date(p.To.Year(), p.To.Month(), p.To.Day(), 23, 59, 59, 0, p.To.Location())
	default: // PeriodAll
		start = time.Time{}
		end = farFuture
	}
	return start, end
}

// Contains reports whether t falls within the resolved range, inclusive
// at both ends. The comparison is on exact instants, not calendar days:
// an expense stamped exactly at start or exactly at end is included.
func (p Period) Contains(t, now time.Time) bool {
	start, end := p.Range(now)
	return !t.Before(start) && !t.After(end)
}

// farFuture is the upper bound for the All period.
var farFuture = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayMidnight returns midnight of the Monday of t's week. Weeks run
// Monday through Sunday, so a Sunday resolves six days back.
func mondayMidnight(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return midnight(t.AddDate(0, 0, -offset))
}
