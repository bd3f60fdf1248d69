package workout

import "math"

// Measurement is the canonical per-exercise-instance shape every aggregation
// consumes: one logged exercise on one day, with only the metric values
// valid for its modality. Exactly one of the three value groups is set.
type Measurement struct {
	Date     string
	Key      string // identity key, see ExerciseRecord.IdentityKey
	Name     string
	Modality Modality

	// RecordID identifies the Day the measurement came from, so PRs can
	// point back at their source record.
	RecordID int

	Strength     []StrengthSet
	Cardio       *CardioSession
	Calisthenics []CalisthenicsSet
}

// Normalize flattens raw day records into canonical measurements.
//
// It is deliberately lenient: entries with an unknown modality, a bad date,
// or no single valid value are dropped without error, and individual
// malformed sets (non-positive reps, non-finite weight) are skipped. Upstream
// views depend on partial data never crashing a whole summary, so this stays
// a silent best-effort pass rather than a validation layer.
//
// The input is never mutated; all returned slices are freshly allocated.
func Normalize(days []Day) []Measurement {
	var out []Measurement
	for _, day := range days {
		if !ValidDate(day.Date) {
			continue
		}
		for _, ex := range day.Exercises {
			if m, ok := normalizeExercise(day, ex); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

func normalizeExercise(day Day, ex ExerciseRecord) (Measurement, bool) {
	m := Measurement{
		Date:     day.Date,
		Key:      ex.IdentityKey(),
		Name:     ex.Name,
		Modality: ex.Modality,
		RecordID: day.ID,
	}
	if m.Key == "" {
		return Measurement{}, false
	}

	switch ex.Modality {
	case ModalityStrength:
		for _, set := range ex.Sets {
			if set.Reps <= 0 || !finite(set.Weight) || set.Weight < 0 {
				continue
			}
			m.Strength = append(m.Strength, set)
		}
		if len(m.Strength) == 0 {
			return Measurement{}, false
		}
	case ModalityCardio:
		if ex.Cardio == nil {
			return Measurement{}, false
		}
		c := *ex.Cardio
		if !finite(c.DurationSeconds) || c.DurationSeconds <= 0 {
			return Measurement{}, false
		}
		if !finite(c.Distance) || c.Distance < 0 {
			c.Distance = 0
		}
		m.Cardio = &c
	case ModalityCalisthenics:
		for _, set := range ex.Calisthenics {
			if set.Reps <= 0 {
				continue
			}
			if !finite(set.DurationSeconds) || set.DurationSeconds < 0 {
				set.DurationSeconds = 0
			}
			m.Calisthenics = append(m.Calisthenics, set)
		}
		if len(m.Calisthenics) == 0 {
			return Measurement{}, false
		}
	default:
		return Measurement{}, false
	}

	return m, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
