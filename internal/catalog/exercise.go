package catalog

import (
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"
)

// Exercise is one entry of the static exercise reference data.
type Exercise struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	MuscleGroup string           `json:"muscleGroup"`
	Modality    workout.Modality `json:"modality"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitempty"`
}

// AsWorkoutCatalog converts a listing into the lookup shape the analytics
// engine consumes.
func AsWorkoutCatalog(exercises []Exercise) workout.Catalog {
	catalog := make(workout.Catalog, len(exercises))
	for _, ex := range exercises {
		catalog[ex.ID] = workout.CatalogEntry{
			ID:          ex.ID,
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Modality:    ex.Modality,
		}
	}
	return catalog
}
