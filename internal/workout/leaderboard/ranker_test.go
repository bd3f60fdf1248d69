package leaderboard_test

import (
	"testing"
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"
	"github.com/ThomasCleary02/liftledger-sub000/internal/workout/leaderboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func strengthDay(userID, date string, weight float64) workout.Day {
	return workout.Day{
		UserID: userID,
		Date:   date,
		Exercises: []workout.ExerciseRecord{{
			ExerciseID: "squat",
			Name:       "Squat",
			Modality:   workout.ModalityStrength,
			Sets:       []workout.StrengthSet{{Reps: 10, Weight: weight}},
		}},
	}
}

func cardioDay(userID, date string, distance float64) workout.Day {
	return workout.Day{
		UserID: userID,
		Date:   date,
		Exercises: []workout.ExerciseRecord{{
			ExerciseID: "running",
			Name:       "Running",
			Modality:   workout.ModalityCardio,
			Cardio:     &workout.CardioSession{DurationSeconds: 1800, Distance: distance},
		}},
	}
}

func newTestRanker(today string) *leaderboard.Ranker {
	ranker := leaderboard.NewRanker()
	ranker.NowFunc = func() time.Time {
		t, err := time.Parse(workout.DateLayout, today)
		if err != nil {
			panic(err)
		}
		return t.Add(12 * time.Hour)
	}
	return ranker
}

func TestRanker_Volume(t *testing.T) {
	ranker := newTestRanker("2025-03-10")

	daysByUser := map[string][]workout.Day{
		"ana":  {strengthDay("ana", "2025-03-08", 100)}, // 1000
		"serj": {strengthDay("serj", "2025-03-08", 80)}, // 800
		"mia":  {strengthDay("mia", "2025-03-09", 120)}, // 1200
		"rest": {{UserID: "rest", Date: "2025-03-09", IsRestDay: true}},
	}

	entries := ranker.Rank(daysByUser, leaderboard.MetricVolume, workout.LeaderboardPeriodAll)
	require.Len(t, entries, 3)

	assert.Equal(t, "mia", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "ana", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "serj", entries[2].UserID)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestRanker_ZeroValueUsersExcluded(t *testing.T) {
	ranker := newTestRanker("2025-03-10")

	// the cardio-only user has zero strength volume: they must be absent
	// from the volume board, not trailing it with a zero
	daysByUser := map[string][]workout.Day{
		"lifter": {strengthDay("lifter", "2025-03-08", 100)},
		"runner": {cardioDay("runner", "2025-03-08", 10)},
	}

	volume := ranker.Rank(daysByUser, leaderboard.MetricVolume, workout.LeaderboardPeriodAll)
	require.Len(t, volume, 1)
	assert.Equal(t, "lifter", volume[0].UserID)

	cardio := ranker.Rank(daysByUser, leaderboard.MetricCardio, workout.LeaderboardPeriodAll)
	require.Len(t, cardio, 1)
	assert.Equal(t, "runner", cardio[0].UserID)
}

func TestRanker_Ties(t *testing.T) {
	ranker := newTestRanker("2025-03-10")

	daysByUser := map[string][]workout.Day{
		"zoe": {strengthDay("zoe", "2025-03-08", 100)},
		"ana": {strengthDay("ana", "2025-03-08", 100)},
		"bob": {strengthDay("bob", "2025-03-08", 120)},
		"cat": {strengthDay("cat", "2025-03-08", 50)},
	}

	entries := ranker.Rank(daysByUser, leaderboard.MetricVolume, workout.LeaderboardPeriodAll)
	require.Len(t, entries, 4)

	// equal values share a rank, the next rank skips, tied users are in
	// user ID order
	assert.Equal(t, "bob", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "ana", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "zoe", entries[2].UserID)
	assert.Equal(t, 2, entries[2].Rank)
	assert.Equal(t, "cat", entries[3].UserID)
	assert.Equal(t, 4, entries[3].Rank)
}

func TestRanker_Consistency(t *testing.T) {
	ranker := newTestRanker("2025-03-10")

	daysByUser := map[string][]workout.Day{
		"steady": {
			strengthDay("steady", "2025-03-06", 60),
			strengthDay("steady", "2025-03-07", 60),
			strengthDay("steady", "2025-03-08", 60),
		},
		"heavy": {strengthDay("heavy", "2025-03-08", 200)},
	}

	entries := ranker.Rank(daysByUser, leaderboard.MetricConsistency, workout.LeaderboardPeriod7Days)
	require.Len(t, entries, 2)
	assert.Equal(t, "steady", entries[0].UserID)
	assert.InDelta(t, 3, entries[0].Value, 0.001)
	assert.Equal(t, "heavy", entries[1].UserID)
}

func TestRanker_WindowFiltering(t *testing.T) {
	ranker := newTestRanker("2025-03-31")

	daysByUser := map[string][]workout.Day{
		"recent": {strengthDay("recent", "2025-03-28", 50)},
		"stale":  {strengthDay("stale", "2025-01-15", 300)},
	}

	last7 := ranker.Rank(daysByUser, leaderboard.MetricVolume, workout.LeaderboardPeriod7Days)
	require.Len(t, last7, 1)
	assert.Equal(t, "recent", last7[0].UserID)

	all := ranker.Rank(daysByUser, leaderboard.MetricVolume, workout.LeaderboardPeriodAll)
	assert.Len(t, all, 2)
}

func TestRanker_Empty(t *testing.T) {
	ranker := newTestRanker("2025-03-10")

	entries := ranker.Rank(nil, leaderboard.MetricVolume, workout.LeaderboardPeriodAll)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
