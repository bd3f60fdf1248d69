package workout

import (
	"fmt"
	"time"
)

// Period selects a calendar window for the analytics views.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ParsePeriod maps a query-param value onto a Period; empty means "all".
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("unknown period: %q", s)
}

// LeaderboardPeriod selects a rolling window for the leaderboard views.
// Distinct from Period on purpose: the two enumerations come from different
// screens and must not be conflated.
type LeaderboardPeriod string

const (
	LeaderboardPeriod7Days  LeaderboardPeriod = "7days"
	LeaderboardPeriod30Days LeaderboardPeriod = "30days"
	LeaderboardPeriodAll    LeaderboardPeriod = "all"
)

// ParseLeaderboardPeriod maps a query-param value onto a LeaderboardPeriod;
// empty means "all".
func ParseLeaderboardPeriod(s string) (LeaderboardPeriod, error) {
	switch LeaderboardPeriod(s) {
	case LeaderboardPeriod7Days, LeaderboardPeriod30Days, LeaderboardPeriodAll:
		return LeaderboardPeriod(s), nil
	case "":
		return LeaderboardPeriodAll, nil
	}
	return "", fmt.Errorf("unknown leaderboard period: %q", s)
}

// FilterByPeriod slices days to the requested calendar window, relative to
// now: inclusive lower bound now-1 period, upper bound now. Input order is
// preserved and the input is never mutated. The clock is a parameter so the
// filter stays pure and re-entrant; nothing here caches "now".
func FilterByPeriod(days []Day, period Period, now time.Time) []Day {
	if period == PeriodAll {
		return append([]Day(nil), days...)
	}

	var from time.Time
	switch period {
	case PeriodWeek:
		from = now.AddDate(0, 0, -7)
	case PeriodMonth:
		from = now.AddDate(0, -1, 0)
	case PeriodYear:
		from = now.AddDate(-1, 0, 0)
	default:
		// unknown period behaves as the identity filter
		return append([]Day(nil), days...)
	}

	return filterDateRange(days, localDate(from), localDate(now))
}

// FilterByLeaderboardPeriod is FilterByPeriod's counterpart for the rolling
// leaderboard windows.
func FilterByLeaderboardPeriod(days []Day, period LeaderboardPeriod, now time.Time) []Day {
	var from time.Time
	switch period {
	case LeaderboardPeriod7Days:
		from = now.AddDate(0, 0, -7)
	case LeaderboardPeriod30Days:
		from = now.AddDate(0, 0, -30)
	default:
		return append([]Day(nil), days...)
	}
	return filterDateRange(days, localDate(from), localDate(now))
}

// filterDateRange keeps days with fromDate <= date <= toDate. Dates are
// YYYY-MM-DD strings, so plain string comparison is chronological; the
// bounds are computed at calendar-day granularity in now's own location,
// which keeps the window correct across UTC-offset boundaries.
func filterDateRange(days []Day, fromDate, toDate string) []Day {
	filtered := make([]Day, 0, len(days))
	for _, d := range days {
		if d.Date >= fromDate && d.Date <= toDate {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
