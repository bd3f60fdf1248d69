package leaderboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"
)

// Metric selects which per-user reducer feeds the leaderboard.
type Metric string

const (
	MetricVolume      Metric = "volume"
	MetricCardio      Metric = "cardio"
	MetricConsistency Metric = "consistency"
)

// ParseMetric maps a path segment onto a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricVolume, MetricCardio, MetricConsistency:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown leaderboard metric: %q", s)
}

// Entry is one user's standing. Rank is 1-based.
type Entry struct {
	UserID string  `json:"userId"`
	Value  float64 `json:"value"`
	Rank   int     `json:"rank"`
}

// Ranker turns per-user day records into rank-ordered standings. Like the
// analytics Analyzer it is pure and stateless, with an injectable clock.
type Ranker struct {
	NowFunc func() time.Time
}

func NewRanker() *Ranker {
	return &Ranker{
		NowFunc: time.Now,
	}
}

// Rank filters each user's days to the rolling window, reduces them to a
// single metric value, drops users with nothing qualifying (a zero value
// means the user does not appear at all, rather than trailing the board),
// and sorts descending.
//
// Ties use standard competition ranking: equal values share a rank and the
// next rank skips (1, 2, 2, 4). Tied users are ordered by user ID so the
// output is deterministic regardless of map iteration order.
func (r *Ranker) Rank(
	daysByUser map[string][]workout.Day,
	metric Metric,
	period workout.LeaderboardPeriod,
) []Entry {
	now := r.NowFunc()

	entries := make([]Entry, 0, len(daysByUser))
	for userID, days := range daysByUser {
		windowed := workout.FilterByLeaderboardPeriod(days, period, now)
		value := reduce(windowed, metric)
		if value <= 0 {
			continue
		}
		entries = append(entries, Entry{UserID: userID, Value: value})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		if i > 0 && entries[i].Value == entries[i-1].Value {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}

	return entries
}

func reduce(days []workout.Day, metric Metric) float64 {
	switch metric {
	case MetricVolume:
		return workout.StrengthVolume(days)
	case MetricCardio:
		return workout.CardioDistance(days)
	case MetricConsistency:
		return float64(workout.ActiveDayCount(days))
	}
	return 0
}
