package workout

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the local-calendar-day format used everywhere in this
// package. A Day's date is never a UTC timestamp: converting through UTC
// would shift records logged near midnight into the wrong day.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Modality is a closed set: every aggregation switches over it exhaustively,
// so a new modality is a compile-visible change site.
type Modality string

const (
	ModalityStrength     Modality = "strength"
	ModalityCardio       Modality = "cardio"
	ModalityCalisthenics Modality = "calisthenics"
)

func (m Modality) Valid() bool {
	switch m {
	case ModalityStrength, ModalityCardio, ModalityCalisthenics:
		return true
	}
	return false
}

// StrengthSet is one set of a strength exercise.
type StrengthSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Volume of a single set: reps x weight.
func (s StrengthSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// CardioSession is the single measurement of a cardio exercise.
// Distance is optional; zero means "not recorded".
type CardioSession struct {
	DurationSeconds float64 `json:"durationSeconds"`
	Distance        float64 `json:"distance,omitempty"`
}

// Pace returns seconds per unit distance, or 0 when no distance recorded.
func (c CardioSession) Pace() float64 {
	if c.Distance <= 0 {
		return 0
	}
	return c.DurationSeconds / c.Distance
}

// CalisthenicsSet is one set of a bodyweight exercise, optionally timed.
type CalisthenicsSet struct {
	Reps            int     `json:"reps"`
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
}

// ExerciseRecord is a modality-tagged union: exactly one of Sets, Cardio or
// Calisthenics carries the measurements, selected by Modality. ExerciseID
// references the exercise catalog and may be empty for entries logged before
// the exercise got a stable ID.
type ExerciseRecord struct {
	ExerciseID string   `json:"exerciseId,omitempty"`
	Name       string   `json:"name"`
	Modality   Modality `json:"modality"`

	Sets         []StrengthSet     `json:"sets,omitempty"`
	Cardio       *CardioSession    `json:"cardio,omitempty"`
	Calisthenics []CalisthenicsSet `json:"calisthenics,omitempty"`
}

// IdentityKey is the single identity rule used by every aggregation in this
// package: the stable catalog ID when present, otherwise the display name.
// Keeping one helper (instead of ad-hoc `id || name` at call sites) means
// history logged before an exercise had an ID merges the same way everywhere.
func (e ExerciseRecord) IdentityKey() string {
	if e.ExerciseID != "" {
		return e.ExerciseID
	}
	return e.Name
}

// Day is a dated container of exercise records owned by exactly one user.
// Identity is (UserID, Date). A rest day carries no exercises; the
// aggregations do not re-validate that and simply see zero measurements.
type Day struct {
	ID        int              `json:"id,omitempty"`
	UserID    string           `json:"userId"`
	Date      string           `json:"date"` // local calendar day, YYYY-MM-DD
	IsRestDay bool             `json:"isRestDay"`
	Exercises []ExerciseRecord `json:"exercises"`
	CreatedAt time.Time        `json:"createdAt,omitempty"`
}

// Active reports whether the day has at least one exercise logged.
func (d Day) Active() bool {
	return len(d.Exercises) > 0
}

// ValidDate checks the YYYY-MM-DD shape and that the date actually exists.
func ValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// localDate renders t's calendar day in t's own location.
func localDate(t time.Time) string {
	return t.Format(DateLayout)
}

// prevDate returns the calendar day before the given YYYY-MM-DD date.
func prevDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	return t.AddDate(0, 0, -1).Format(DateLayout), nil
}

// CatalogEntry is the static reference data needed to enrich aggregations by
// muscle group. The full catalog lives in the catalog package; aggregations
// only ever need this lookup shape.
type CatalogEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MuscleGroup string   `json:"muscleGroup"`
	Modality    Modality `json:"modality"`
}

// Catalog maps exercise ID to its reference entry. A nil Catalog is valid
// and behaves as all-misses: per-muscle-group grouping comes out empty while
// every other aggregate is unaffected.
type Catalog map[string]CatalogEntry

// Lookup returns the entry for the given exercise ID, if known.
func (c Catalog) Lookup(exerciseID string) (CatalogEntry, bool) {
	entry, ok := c[exerciseID]
	return entry, ok
}
