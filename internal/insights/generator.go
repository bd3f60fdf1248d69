package insights

import (
	"fmt"
	"math"

	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"
)

// Generate turns an analytics summary into short, human-readable insight
// lines, most noteworthy first. An empty history yields a single starter
// line rather than nothing.
func Generate(summary workout.AnalyticsSummary) []string {
	if summary.TotalWorkouts == 0 {
		return []string{"No workouts logged yet. Log your first session to start tracking progress."}
	}

	var lines []string

	if summary.CurrentStreak > 1 {
		lines = append(lines, fmt.Sprintf("You are on a %d day streak. Keep it going!", summary.CurrentStreak))
	}
	if summary.LongestStreak > summary.CurrentStreak {
		lines = append(lines, fmt.Sprintf("Your longest streak so far is %d days.", summary.LongestStreak))
	}

	if summary.TotalVolume > 0 {
		lines = append(lines, fmt.Sprintf("Total weight moved: %s kg across %d workouts.",
			formatAmount(summary.TotalVolume), summary.TotalWorkouts))
	} else {
		lines = append(lines, fmt.Sprintf("Workouts logged: %d.", summary.TotalWorkouts))
	}

	if summary.TotalCardioDistance > 0 {
		lines = append(lines, fmt.Sprintf("Distance covered: %s km.", formatAmount(summary.TotalCardioDistance)))
	} else if summary.TotalCardioDuration > 0 {
		minutes := int(summary.TotalCardioDuration / 60)
		lines = append(lines, fmt.Sprintf("Cardio time: %d minutes.", minutes))
	}

	if summary.TotalCalisthenicsReps > 0 {
		lines = append(lines, fmt.Sprintf("Bodyweight reps total: %d.", summary.TotalCalisthenicsReps))
	}

	if summary.FavoriteExercise != nil {
		lines = append(lines, fmt.Sprintf("Favorite exercise: %s.", *summary.FavoriteExercise))
	}

	return lines
}

// formatAmount drops the decimals on whole values so "1000" never shows
// as "1000.0".
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
