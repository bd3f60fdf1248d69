package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrDayNotFound = errors.New("day record not found")

// ListParams bounds a day listing. Zero values mean "no bound".
type ListParams struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert inserts or replaces the day record for (userID, date). The
// exercise list is stored as the modality-tagged JSON the clients log.
func (r *Repo) Upsert(ctx context.Context, day Day) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", day.UserID))
	span.SetAttributes(attribute.String("day", day.Date))

	if !ValidDate(day.Date) {
		return nil, fmt.Errorf("invalid date: %q", day.Date)
	}

	exercisesJson, err := json.Marshal(day.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	if day.CreatedAt.IsZero() {
		day.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_day
				(user_id, day, is_rest_day, exercises, created_at)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, day) DO UPDATE
				SET is_rest_day = EXCLUDED.is_rest_day,
					exercises = EXCLUDED.exercises
			RETURNING id;`,
		day.UserID, day.Date, day.IsRestDay, exercisesJson, day.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("day.id", id))

	day.ID = id
	return &day, nil
}

// Get returns the day record for (userID, date).
func (r *Repo) Get(ctx context.Context, userID, date string) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("day", date))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, to_char(day, 'YYYY-MM-DD'), is_rest_day, exercises, created_at
			FROM workout_day
			WHERE user_id = $1 AND day = $2;`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	days, err := r.rows2days(rows)
	if err != nil {
		return nil, err
	}
	if len(days) != 1 {
		return nil, ErrDayNotFound
	}
	return &days[0], nil
}

// Delete removes the day record for (userID, date).
func (r *Repo) Delete(ctx context.Context, userID, date string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("day", date))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_day WHERE user_id = $1 AND day = $2;`,
		userID, date,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

// ListAll returns a user's day records, oldest first, optionally bounded.
func (r *Repo) ListAll(ctx context.Context, userID string, params ListParams) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	limit := params.Limit
	if limit <= 0 {
		// a user's lifetime history is thousands of records, not millions
		limit = 100_000
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, to_char(day, 'YYYY-MM-DD'), is_rest_day, exercises, created_at
			FROM workout_day
			WHERE user_id = $1
			AND ($2::date IS NULL OR day >= $2)
			AND ($3::date IS NULL OR day <= $3)
			ORDER BY day ASC
			LIMIT $4;`,
		userID, params.From, params.To, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	days, err := r.rows2days(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2days: %w", err)
	}
	return days, nil
}

// ListForUsers fetches every given user's day records in one query, for
// leaderboard assembly. Users with no records are present with an empty
// slice so callers can tell "no data" from "not asked for".
func (r *Repo) ListForUsers(ctx context.Context, userIDs []string) (_ map[string][]Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listforusers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("users", len(userIDs)))

	daysByUser := make(map[string][]Day, len(userIDs))
	for _, userID := range userIDs {
		daysByUser[userID] = []Day{}
	}
	if len(userIDs) == 0 {
		return daysByUser, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, to_char(day, 'YYYY-MM-DD'), is_rest_day, exercises, created_at
			FROM workout_day
			WHERE user_id = ANY($1)
			ORDER BY day ASC;`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	days, err := r.rows2days(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2days: %w", err)
	}
	for _, d := range days {
		daysByUser[d.UserID] = append(daysByUser[d.UserID], d)
	}
	return daysByUser, nil
}

func (r *Repo) rows2days(rows pgx.Rows) ([]Day, error) {
	var days []Day
	for rows.Next() {
		var (
			id             int
			userID, date   string
			isRestDay      bool
			exercisesBytes []byte
			createdAt      time.Time
		)
		if err := rows.Scan(&id, &userID, &date, &isRestDay, &exercisesBytes, &createdAt); err != nil {
			return nil, err
		}

		d := Day{
			ID:        id,
			UserID:    userID,
			Date:      date,
			IsRestDay: isRestDay,
			CreatedAt: createdAt,
		}

		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &d.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for day %d: %w", id, err)
			}
		}
		if d.Exercises == nil {
			d.Exercises = []ExerciseRecord{}
		}

		days = append(days, d)
	}

	if days == nil {
		days = make([]Day, 0)
	}
	return days, nil
}
