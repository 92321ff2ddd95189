package stats

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/journal"
)

// Period names a time window trades are filtered to.
type Period string

const (
	Week     Period = "week"
	Month    Period = "month"
	Quarter  Period = "quarter"
	HalfYear Period = "half-year"
	Year     Period = "year"
	All      Period = "all"
)

// ParsePeriod converts a flag value into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Week, Month, Quarter, HalfYear, Year, All:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// FilterByPeriod keeps trades whose timestamp falls in the given year
// and inside the named window. All applies no restriction. Week and
// month anchor to now: the week starts at the most recent Sunday at
// local midnight, the month is the calendar month containing now.
// Quarter, half-year and year anchor to the selected year's start.
func FilterByPeriod(trades []journal.Trade, p Period, year int, now time.Time) []journal.Trade {
	if p == All {
		return append([]journal.Trade(nil), trades...)
	}

	start, end := periodBounds(p, year, now)

	var out []journal.Trade
	for _, t := range trades {
		ts := t.Time
		if ts.Year() != year {
			continue
		}
		if !ts.Before(start) && ts.Before(end) {
			out = append(out, t)
		}
	}
	return out
}

func periodBounds(p Period, year int, now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	switch p {
	case Week:
		start := weekStart(now)
		return start, start.AddDate(0, 0, 7)
	case Month:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0)
	case Quarter:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 3, 0)
	case HalfYear:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 6, 0)
	default: // Year
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0)
	}
}

// weekStart returns the most recent Sunday at local midnight relative
// to now.
func weekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(now.Weekday()))
}
