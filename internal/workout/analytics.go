package workout

import (
	"sort"
	"time"
)

// AnalyticsSummary is the top-level aggregate a dashboard view renders.
// Derived fresh on every call, never persisted.
type AnalyticsSummary struct {
	TotalWorkouts         int     `json:"totalWorkouts"`
	CurrentStreak         int     `json:"currentStreak"`
	LongestStreak         int     `json:"longestStreak"`
	TotalVolume           float64 `json:"totalVolume"`
	TotalCardioDistance   float64 `json:"totalCardioDistance"`
	TotalCardioDuration   float64 `json:"totalCardioDuration"`
	TotalCalisthenicsReps int     `json:"totalCalisthenicsReps"`
	FavoriteExercise      *string `json:"favoriteExercise"`
}

// VolumePoint is one day's strength volume.
type VolumePoint struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
}

// ExerciseFrequency counts how often a strength exercise shows up in the
// window, with the heaviest single-set weight seen.
type ExerciseFrequency struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	MaxWeight float64 `json:"maxWeight"`
}

// MuscleGroupVolume groups strength volume per muscle group, via the
// exercise catalog.
type MuscleGroupVolume struct {
	MuscleGroup string  `json:"muscleGroup"`
	Volume      float64 `json:"volume"`
	Workouts    int     `json:"workouts"`
	Exercises   int     `json:"exercises"`
}

type StrengthAnalytics struct {
	TotalVolume             float64             `json:"totalVolume"`
	AverageVolumePerWorkout float64             `json:"averageVolumePerWorkout"`
	MaxVolumeWorkout        *VolumePoint        `json:"maxVolumeWorkout"`
	VolumeTrend             []VolumePoint       `json:"volumeTrend"`
	ExercisesByFrequency    []ExerciseFrequency `json:"exercisesByFrequency"`
	VolumeByMuscleGroup     []MuscleGroupVolume `json:"volumeByMuscleGroup"`
}

// DistancePoint is one day's cardio distance.
type DistancePoint struct {
	Date     string  `json:"date"`
	Distance float64 `json:"distance"`
}

// CardioExerciseFrequency counts cardio sessions per exercise with the
// accumulated distance.
type CardioExerciseFrequency struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	TotalDistance float64 `json:"totalDistance"`
}

type CardioAnalytics struct {
	TotalDistance        float64                   `json:"totalDistance"`
	TotalDuration        float64                   `json:"totalDuration"`
	AveragePace          float64                   `json:"averagePace"`
	BestPace             float64                   `json:"bestPace"`
	LongestDistance      float64                   `json:"longestDistance"`
	LongestDuration      float64                   `json:"longestDuration"`
	DistanceTrend        []DistancePoint           `json:"distanceTrend"`
	ExercisesByFrequency []CardioExerciseFrequency `json:"exercisesByFrequency"`
}

// Analyzer derives analytics from in-memory day records. It is stateless and
// pure: inputs are treated as immutable snapshots and every call recomputes
// from scratch. NowFunc is injectable so the streak and window logic can be
// pinned in tests.
type Analyzer struct {
	NowFunc func() time.Time
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		NowFunc: time.Now,
	}
}

// Summary computes the all-time analytics summary. The catalog is used to
// resolve display names for entries that were logged without one; a nil
// catalog is fine.
func (a *Analyzer) Summary(days []Day, catalog Catalog) AnalyticsSummary {
	measurements := Normalize(days)

	var summary AnalyticsSummary

	activeDates := make(map[string]struct{})
	for _, d := range days {
		if d.Active() && ValidDate(d.Date) {
			activeDates[d.Date] = struct{}{}
		}
	}
	summary.TotalWorkouts = len(activeDates)

	for _, m := range measurements {
		switch m.Modality {
		case ModalityStrength:
			for _, set := range m.Strength {
				summary.TotalVolume += set.Volume()
			}
		case ModalityCardio:
			summary.TotalCardioDuration += m.Cardio.DurationSeconds
			summary.TotalCardioDistance += m.Cardio.Distance
		case ModalityCalisthenics:
			for _, set := range m.Calisthenics {
				summary.TotalCalisthenicsReps += set.Reps
			}
		}
	}

	summary.FavoriteExercise = favoriteExercise(measurements, catalog)
	summary.CurrentStreak, summary.LongestStreak = streaks(days, localDate(a.NowFunc()))

	return summary
}

// Strength computes the strength-focused analytics over the given period.
func (a *Analyzer) Strength(days []Day, catalog Catalog, period Period) StrengthAnalytics {
	windowed := FilterByPeriod(days, period, a.NowFunc())
	measurements := Normalize(windowed)

	res := StrengthAnalytics{
		VolumeTrend:          []VolumePoint{},
		ExercisesByFrequency: []ExerciseFrequency{},
		VolumeByMuscleGroup:  []MuscleGroupVolume{},
	}

	volumePerDay := make(map[string]float64)
	type freqEntry struct {
		name      string
		count     int
		maxWeight float64
		firstSeen int
	}
	frequency := make(map[string]*freqEntry)

	type groupEntry struct {
		volume    float64
		dates     map[string]struct{}
		exercises map[string]struct{}
	}
	groups := make(map[string]*groupEntry)

	order := 0
	for _, m := range measurements {
		if m.Modality != ModalityStrength {
			continue
		}

		var exVolume float64
		var exMaxWeight float64
		for _, set := range m.Strength {
			exVolume += set.Volume()
			if set.Weight > exMaxWeight {
				exMaxWeight = set.Weight
			}
		}

		res.TotalVolume += exVolume
		volumePerDay[m.Date] += exVolume

		fe, ok := frequency[m.Key]
		if !ok {
			fe = &freqEntry{name: m.Name, firstSeen: order}
			frequency[m.Key] = fe
		}
		fe.count++
		if exMaxWeight > fe.maxWeight {
			fe.maxWeight = exMaxWeight
		}

		// catalog misses are excluded from the per-muscle-group view but
		// still counted in the totals above
		if entry, ok := catalog.Lookup(m.Key); ok {
			ge, ok := groups[entry.MuscleGroup]
			if !ok {
				ge = &groupEntry{
					dates:     make(map[string]struct{}),
					exercises: make(map[string]struct{}),
				}
				groups[entry.MuscleGroup] = ge
			}
			ge.volume += exVolume
			ge.dates[m.Date] = struct{}{}
			ge.exercises[m.Key] = struct{}{}
		}

		order++
	}

	if len(volumePerDay) > 0 {
		res.AverageVolumePerWorkout = res.TotalVolume / float64(len(volumePerDay))
	}

	dates := make([]string, 0, len(volumePerDay))
	for date := range volumePerDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		vol := volumePerDay[date]
		if vol <= 0 {
			continue
		}
		res.VolumeTrend = append(res.VolumeTrend, VolumePoint{Date: date, Volume: vol})
		if res.MaxVolumeWorkout == nil || vol > res.MaxVolumeWorkout.Volume {
			res.MaxVolumeWorkout = &VolumePoint{Date: date, Volume: vol}
		}
	}

	for _, fe := range frequency {
		res.ExercisesByFrequency = append(res.ExercisesByFrequency, ExerciseFrequency{
			Name:      fe.name,
			Count:     fe.count,
			MaxWeight: fe.maxWeight,
		})
	}
	sort.Slice(res.ExercisesByFrequency, func(i, j int) bool {
		fi, fj := res.ExercisesByFrequency[i], res.ExercisesByFrequency[j]
		if fi.Count != fj.Count {
			return fi.Count > fj.Count
		}
		return fi.Name < fj.Name
	})

	for group, ge := range groups {
		res.VolumeByMuscleGroup = append(res.VolumeByMuscleGroup, MuscleGroupVolume{
			MuscleGroup: group,
			Volume:      ge.volume,
			Workouts:    len(ge.dates),
			Exercises:   len(ge.exercises),
		})
	}
	sort.Slice(res.VolumeByMuscleGroup, func(i, j int) bool {
		gi, gj := res.VolumeByMuscleGroup[i], res.VolumeByMuscleGroup[j]
		if gi.Volume != gj.Volume {
			return gi.Volume > gj.Volume
		}
		return gi.MuscleGroup < gj.MuscleGroup
	})

	return res
}

// Cardio computes the cardio-focused analytics over the given period.
func (a *Analyzer) Cardio(days []Day, period Period) CardioAnalytics {
	windowed := FilterByPeriod(days, period, a.NowFunc())
	measurements := Normalize(windowed)

	res := CardioAnalytics{
		DistanceTrend:        []DistancePoint{},
		ExercisesByFrequency: []CardioExerciseFrequency{},
	}

	distancePerDay := make(map[string]float64)
	type freqEntry struct {
		name     string
		count    int
		distance float64
	}
	frequency := make(map[string]*freqEntry)

	// the average pace is the aggregate ratio sum(duration)/sum(distance)
	// over distance-bearing entries, NOT a mean of per-entry paces
	var distanceBearingDuration float64

	bestPace := 0.0
	for _, m := range measurements {
		if m.Modality != ModalityCardio {
			continue
		}
		c := m.Cardio

		res.TotalDuration += c.DurationSeconds
		if c.DurationSeconds > res.LongestDuration {
			res.LongestDuration = c.DurationSeconds
		}

		if c.Distance > 0 {
			res.TotalDistance += c.Distance
			distanceBearingDuration += c.DurationSeconds
			distancePerDay[m.Date] += c.Distance
			if c.Distance > res.LongestDistance {
				res.LongestDistance = c.Distance
			}
			if pace := c.Pace(); bestPace == 0 || pace < bestPace {
				bestPace = pace
			}
		}

		fe, ok := frequency[m.Key]
		if !ok {
			fe = &freqEntry{name: m.Name}
			frequency[m.Key] = fe
		}
		fe.count++
		fe.distance += c.Distance
	}

	res.BestPace = bestPace
	if res.TotalDistance > 0 {
		res.AveragePace = distanceBearingDuration / res.TotalDistance
	}

	dates := make([]string, 0, len(distancePerDay))
	for date := range distancePerDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		res.DistanceTrend = append(res.DistanceTrend, DistancePoint{
			Date:     date,
			Distance: distancePerDay[date],
		})
	}

	for _, fe := range frequency {
		res.ExercisesByFrequency = append(res.ExercisesByFrequency, CardioExerciseFrequency{
			Name:          fe.name,
			Count:         fe.count,
			TotalDistance: fe.distance,
		})
	}
	sort.Slice(res.ExercisesByFrequency, func(i, j int) bool {
		fi, fj := res.ExercisesByFrequency[i], res.ExercisesByFrequency[j]
		if fi.Count != fj.Count {
			return fi.Count > fj.Count
		}
		return fi.Name < fj.Name
	})

	return res
}

// favoriteExercise picks the most frequently logged exercise across all
// modalities; ties go to the one logged first. Returns nil when there is
// nothing logged.
func favoriteExercise(measurements []Measurement, catalog Catalog) *string {
	type counter struct {
		name      string
		count     int
		firstSeen int
	}
	counts := make(map[string]*counter)
	for i, m := range measurements {
		c, ok := counts[m.Key]
		if !ok {
			name := m.Name
			if name == "" {
				if entry, found := catalog.Lookup(m.Key); found {
					name = entry.Name
				}
			}
			c = &counter{name: name, firstSeen: i}
			counts[m.Key] = c
		}
		c.count++
	}

	var best *counter
	for _, c := range counts {
		if best == nil ||
			c.count > best.count ||
			(c.count == best.count && c.firstSeen < best.firstSeen) {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	name := best.name
	return &name
}

// streaks computes the current and longest streaks over local calendar
// dates. A date with at least one exercise counts toward a streak; a logged
// rest day keeps a streak alive without counting; a date with no record at
// all is a gap. The current streak stays alive until a full calendar day is
// missed, so its run has to end today or yesterday.
func streaks(days []Day, today string) (current, longest int) {
	type dayStatus struct {
		active bool
	}
	byDate := make(map[string]dayStatus)
	for _, d := range days {
		if !ValidDate(d.Date) {
			continue
		}
		st := byDate[d.Date]
		st.active = st.active || d.Active()
		byDate[d.Date] = st
	}
	if len(byDate) == 0 {
		return 0, 0
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	run := 0
	prev := ""
	for _, date := range dates {
		if prev != "" {
			expected, err := prevDate(date)
			if err != nil || expected != prev {
				run = 0
			}
		}
		if byDate[date].active {
			run++
		}
		if run > longest {
			longest = run
		}
		prev = date
	}

	anchor := today
	if _, ok := byDate[anchor]; !ok {
		yesterday, err := prevDate(today)
		if err != nil {
			return 0, longest
		}
		anchor = yesterday
	}
	for {
		st, ok := byDate[anchor]
		if !ok {
			break
		}
		if st.active {
			current++
		}
		var err error
		anchor, err = prevDate(anchor)
		if err != nil {
			break
		}
	}

	return current, longest
}

// StrengthVolume is the single-metric reducer behind the volume leaderboard:
// the summed reps x weight over every strength set in the given days.
func StrengthVolume(days []Day) float64 {
	var total float64
	for _, m := range Normalize(days) {
		if m.Modality != ModalityStrength {
			continue
		}
		for _, set := range m.Strength {
			total += set.Volume()
		}
	}
	return total
}

// CardioDistance sums the recorded cardio distance over the given days.
func CardioDistance(days []Day) float64 {
	var total float64
	for _, m := range Normalize(days) {
		if m.Modality == ModalityCardio {
			total += m.Cardio.Distance
		}
	}
	return total
}

// ActiveDayCount counts distinct calendar days with at least one exercise.
func ActiveDayCount(days []Day) int {
	dates := make(map[string]struct{})
	for _, d := range days {
		if d.Active() && ValidDate(d.Date) {
			dates[d.Date] = struct{}{}
		}
	}
	return len(dates)
}
