package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"
	"github.com/ThomasCleary02/liftledger-sub000/internal/workout"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidExercise  = errors.New("invalid exercise")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, modality, description, created_at
			FROM exercise_type
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &exercises[0], nil
}

func (r *Repo) GetAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, modality, description, created_at
			FROM exercise_type
			ORDER BY muscle_group, name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2exercises: %w", err)
	}
	return exercises, nil
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exercise.ID))

	if exercise.ID == "" || exercise.Name == "" || exercise.MuscleGroup == "" {
		return nil, fmt.Errorf("%w: id, name and muscle group are required", ErrInvalidExercise)
	}
	if !exercise.Modality.Valid() {
		return nil, fmt.Errorf("%w: unknown modality %q", ErrInvalidExercise, exercise.Modality)
	}

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO exercise_type (id, name, muscle_group, modality, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		exercise.ID, exercise.Name, exercise.MuscleGroup,
		string(exercise.Modality), exercise.Description, exercise.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert exercise type: %w", err)
	}

	return &exercise, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var (
			ex       Exercise
			modality string
		)
		if err := rows.Scan(
			&ex.ID, &ex.Name, &ex.MuscleGroup, &modality, &ex.Description, &ex.CreatedAt,
		); err != nil {
			return nil, err
		}
		ex.Modality = workout.Modality(modality)
		exercises = append(exercises, ex)
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}
	return exercises, nil
}
