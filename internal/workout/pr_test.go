package workout_test

import (
	"testing"

	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strengthEntry(date string, weights ...float64) workout.Day {
	sets := make([]workout.StrengthSet, 0, len(weights))
	for _, w := range weights {
		sets = append(sets, workout.StrengthSet{Reps: 5, Weight: w})
	}
	return workout.Day{
		UserID: "serj",
		Date:   date,
		Exercises: []workout.ExerciseRecord{{
			ExerciseID: "bench-press",
			Name:       "Bench Press",
			Modality:   workout.ModalityStrength,
			Sets:       sets,
		}},
	}
}

func TestFindAllPRs(t *testing.T) {
	days := []workout.Day{
		strengthEntry("2025-03-01", 100, 110),
		strengthEntry("2025-03-05", 105),
		runDay("serj", "2025-03-02", 1800, 5),
		runDay("serj", "2025-03-06", 1500, 5),
		{
			UserID: "serj",
			Date:   "2025-03-03",
			Exercises: []workout.ExerciseRecord{{
				Name:         "Plank",
				Modality:     workout.ModalityCalisthenics,
				Calisthenics: []workout.CalisthenicsSet{{Reps: 1, DurationSeconds: 90}},
			}},
		},
	}

	prs := workout.FindAllPRs(days)
	byType := make(map[workout.PRType]workout.ExercisePR)
	for _, pr := range prs {
		byType[pr.PRType] = pr
	}

	maxWeight, ok := byType[workout.PRMaxWeight]
	require.True(t, ok)
	assert.Equal(t, "Bench Press", maxWeight.ExerciseName)
	assert.InDelta(t, 110, maxWeight.Value, 0.001)
	assert.Equal(t, "2025-03-01", maxWeight.Date)

	bestPace, ok := byType[workout.PRBestPace]
	require.True(t, ok)
	assert.Equal(t, "Running", bestPace.ExerciseName)
	assert.InDelta(t, 300, bestPace.Value, 0.001)
	assert.Equal(t, "2025-03-06", bestPace.Date)

	maxDistance, ok := byType[workout.PRMaxDistance]
	require.True(t, ok)
	assert.InDelta(t, 5, maxDistance.Value, 0.001)
	// equal distances: the earliest one is the record
	assert.Equal(t, "2025-03-02", maxDistance.Date)

	maxReps, ok := byType[workout.PRMaxReps]
	require.True(t, ok)
	assert.Equal(t, "Plank", maxReps.ExerciseName)

	maxDuration, ok := byType[workout.PRMaxDuration]
	require.True(t, ok)
	assert.InDelta(t, 90, maxDuration.Value, 0.001)
}

func TestFindAllPRs_TieKeepsEarliestDate(t *testing.T) {
	days := []workout.Day{
		strengthEntry("2025-03-05", 100),
		strengthEntry("2025-03-01", 100),
		strengthEntry("2025-03-09", 100),
	}

	prs := workout.FindAllPRs(days)
	require.Len(t, prs, 1)
	assert.Equal(t, workout.PRMaxWeight, prs[0].PRType)
	assert.Equal(t, "2025-03-01", prs[0].Date)
}

func TestFindAllPRs_Empty(t *testing.T) {
	prs := workout.FindAllPRs(nil)
	assert.NotNil(t, prs)
	assert.Empty(t, prs)
}

func TestIsNewPR(t *testing.T) {
	testCases := []struct {
		name     string
		history  []workout.Day
		expected bool
	}{
		{
			name:     "empty history",
			history:  nil,
			expected: false,
		},
		{
			name:     "first ever entry",
			history:  []workout.Day{strengthEntry("2025-03-01", 100)},
			expected: true,
		},
		{
			name: "heavier than before",
			history: []workout.Day{
				strengthEntry("2025-03-01", 100),
				strengthEntry("2025-03-05", 105),
			},
			expected: true,
		},
		{
			name: "lighter than before",
			history: []workout.Day{
				strengthEntry("2025-03-01", 100),
				strengthEntry("2025-03-05", 95),
			},
			expected: false,
		},
		{
			name: "matching the previous best still counts",
			history: []workout.Day{
				strengthEntry("2025-03-01", 100),
				strengthEntry("2025-03-05", 100),
			},
			expected: true,
		},
		{
			name: "slower pace is not a record",
			history: []workout.Day{
				runDay("serj", "2025-03-01", 1500, 5),
				runDay("serj", "2025-03-05", 1800, 5),
			},
			expected: false,
		},
		{
			name: "faster pace is a record",
			history: []workout.Day{
				runDay("serj", "2025-03-01", 1800, 5),
				runDay("serj", "2025-03-05", 1500, 5),
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, workout.IsNewPR(tc.history))
		})
	}
}
