package friends

import (
	"context"
	"fmt"
	"time"

	"github.com/ThomasCleary02/liftledger-sub000/internal/telemetry/tracing"
	"github.com/ThomasCleary02/liftledger-sub000/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo holds the friend graph. Rows are stored symmetrically, one
// row per direction, so listing is a single indexed scan.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListFriends(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT friend_id FROM friend WHERE user_id = $1 ORDER BY friend_id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query friends: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	friendIDs := make([]string, 0)
	for rows.Next() {
		var friendID string
		if err := rows.Scan(&friendID); err != nil {
			return nil, err
		}
		friendIDs = append(friendIDs, friendID)
	}

	return friendIDs, nil
}

func (r *Repo) Add(ctx context.Context, userID, friendID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == friendID {
		return fmt.Errorf("cannot befriend yourself")
	}

	now := time.Now()
	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO friend (user_id, friend_id, created_at)
			VALUES ($1, $2, $3), ($2, $1, $3);`,
		userID, friendID, now,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil
		}
		return fmt.Errorf("insert friend rows: %w", err)
	}

	return nil
}

func (r *Repo) Remove(ctx context.Context, userID, friendID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.db.Exec(
		ctx,
		`DELETE FROM friend
			WHERE (user_id = $1 AND friend_id = $2)
			OR (user_id = $2 AND friend_id = $1);`,
		userID, friendID,
	); err != nil {
		return fmt.Errorf("delete friend rows: %w", err)
	}

	return nil
}
