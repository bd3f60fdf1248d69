package workout

import "sort"

// PRType classifies what kind of record an ExercisePR holds.
type PRType string

const (
	PRMaxWeight   PRType = "maxWeight"
	PRMaxDistance PRType = "maxDistance"
	PRMaxDuration PRType = "maxDuration"
	PRBestPace    PRType = "bestPace"
	PRMaxReps     PRType = "maxReps"
)

// ExercisePR is the best-ever value for one (exercise, PR type) pair.
// PRs are always all-time: they ignore any display time window.
type ExercisePR struct {
	ExerciseName   string   `json:"exerciseName"`
	Modality       Modality `json:"modality"`
	PRType         PRType   `json:"prType"`
	Value          float64  `json:"value"`
	Date           string   `json:"date"`
	SourceRecordID int      `json:"sourceRecordId,omitempty"`
}

// candidate is one measured value competing for a PR slot.
type candidate struct {
	value    float64
	date     string
	recordID int
}

// better reports whether c beats cur for the given PR type. Equal values
// never beat an existing record, which makes the earliest achievement "the"
// PR (measurements are scanned in chronological order).
func (c candidate) better(cur *candidate, prType PRType) bool {
	if cur == nil {
		return true
	}
	if prType == PRBestPace {
		return c.value < cur.value
	}
	return c.value > cur.value
}

type prKey struct {
	exercise string
	prType   PRType
}

// FindAllPRs scans the full history and returns one entry per
// (exercise, PR type) pair, for every PR type the exercise's modality
// supports:
//
//   - strength: maxWeight (best single-set weight, reps ignored)
//   - cardio with distance: bestPace (lowest) and maxDistance
//   - cardio without distance: maxDuration
//   - calisthenics: maxReps, plus maxDuration when sets are timed
//
// On equal best values the earliest date wins. The result is sorted by
// exercise name and PR type so output is stable across calls.
func FindAllPRs(days []Day) []ExercisePR {
	measurements := Normalize(days)
	sort.SliceStable(measurements, func(i, j int) bool {
		return measurements[i].Date < measurements[j].Date
	})

	best := make(map[prKey]*candidate)
	names := make(map[string]string)
	modalities := make(map[string]Modality)

	consider := func(key prKey, c candidate) {
		if c.better(best[key], key.prType) {
			cc := c
			best[key] = &cc
		}
	}

	for _, m := range measurements {
		names[m.Key] = m.Name
		modalities[m.Key] = m.Modality

		for prType, value := range prCandidates(m) {
			consider(
				prKey{exercise: m.Key, prType: prType},
				candidate{value: value, date: m.Date, recordID: m.RecordID},
			)
		}
	}

	prs := make([]ExercisePR, 0, len(best))
	for key, c := range best {
		prs = append(prs, ExercisePR{
			ExerciseName:   names[key.exercise],
			Modality:       modalities[key.exercise],
			PRType:         key.prType,
			Value:          c.value,
			Date:           c.date,
			SourceRecordID: c.recordID,
		})
	}
	sort.Slice(prs, func(i, j int) bool {
		if prs[i].ExerciseName != prs[j].ExerciseName {
			return prs[i].ExerciseName < prs[j].ExerciseName
		}
		return prs[i].PRType < prs[j].PRType
	})
	return prs
}

// prCandidates extracts the record-eligible values of a single measurement,
// per PR type its modality supports.
func prCandidates(m Measurement) map[PRType]float64 {
	out := make(map[PRType]float64)
	switch m.Modality {
	case ModalityStrength:
		for _, set := range m.Strength {
			if v, ok := out[PRMaxWeight]; !ok || set.Weight > v {
				out[PRMaxWeight] = set.Weight
			}
		}
	case ModalityCardio:
		if m.Cardio.Distance > 0 {
			out[PRMaxDistance] = m.Cardio.Distance
			out[PRBestPace] = m.Cardio.Pace()
		} else {
			out[PRMaxDuration] = m.Cardio.DurationSeconds
		}
	case ModalityCalisthenics:
		for _, set := range m.Calisthenics {
			if v, ok := out[PRMaxReps]; !ok || float64(set.Reps) > v {
				out[PRMaxReps] = float64(set.Reps)
			}
			if set.DurationSeconds > 0 {
				if v, ok := out[PRMaxDuration]; !ok || set.DurationSeconds > v {
					out[PRMaxDuration] = set.DurationSeconds
				}
			}
		}
	}
	return out
}

// IsNewPR reports whether the most recent entry of a single exercise's
// chronological history sets a new record for any PR type its modality
// supports. The comparison runs against the history excluding that last
// entry, and ties count: matching your previous best is still a new PR.
// Used to decide whether to surface a "new PR" notification right after a
// set is logged.
func IsNewPR(history []Day) bool {
	measurements := Normalize(history)
	if len(measurements) == 0 {
		return false
	}
	sort.SliceStable(measurements, func(i, j int) bool {
		return measurements[i].Date < measurements[j].Date
	})

	latest := measurements[len(measurements)-1]
	previous := measurements[:len(measurements)-1]

	latestValues := prCandidates(latest)
	if len(latestValues) == 0 {
		return false
	}
	if len(previous) == 0 {
		// first time logging this exercise: everything is a record
		return true
	}

	prior := make(map[PRType]float64)
	for _, m := range previous {
		if m.Key != latest.Key || m.Modality != latest.Modality {
			continue
		}
		for prType, value := range prCandidates(m) {
			v, ok := prior[prType]
			switch {
			case !ok:
				prior[prType] = value
			case prType == PRBestPace && value < v:
				prior[prType] = value
			case prType != PRBestPace && value > v:
				prior[prType] = value
			}
		}
	}

	for prType, value := range latestValues {
		priorBest, ok := prior[prType]
		if !ok {
			return true
		}
		if prType == PRBestPace {
			if value <= priorBest {
				return true
			}
			continue
		}
		if value >= priorBest {
			return true
		}
	}
	return false
}
