package infra_postgres_vote

import (
	"context"
	"fmt"

	"github.com/humanbelnik/movierama/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the vote or, when the (user, movie) pair already
// voted, overwrites the previous like/hate value. The unique constraint
// on (user_id, movie_id) makes concurrent double votes collapse into a
// single row.
func (r *Repository) Upsert(ctx context.Context, v model.Vote) (model.Vote, error) {
	query := `
		INSERT INTO votes (movie_id, user_id, "like")
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET "like" = EXCLUDED."like"
	`

	_, err := r.db.ExecContext(ctx, query, v.MovieID, v.UserID, v.Like)
	if err != nil {
		return model.Vote{}, fmt.Errorf("failed to create vote entry: %w", err)
	}

	return v, nil
}

// Delete removes the vote a user cast on a movie. Deleting a vote that
// does not exist is reported as model.ErrNotFound rather than success,
// which spares a lookup before every removal.
func (r *Repository) Delete(ctx context.Context, userID, movieID int64) error {
	query := `
		DELETE FROM votes
		WHERE user_id = $1 AND movie_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, userID, movieID)
	if err != nil {
		return fmt.Errorf("failed to delete vote entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}
