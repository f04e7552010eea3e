package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/humanbelnik/movierama/core/internal/infra/postgres/pgerr"
	"github.com/humanbelnik/movierama/core/internal/model"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	query := `
		INSERT INTO movies (title, description, date, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, m.Title, m.Description, m.Date, m.UserID)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return model.Movie{}, model.ErrDuplicate
		}
		return model.Movie{}, fmt.Errorf("failed to create movie entry: %w", err)
	}

	m.ID = id
	return m, nil
}

func (r *Repository) FindByTitle(ctx context.Context, title string) (model.Movie, error) {
	query := `
		SELECT id, title, description, date, user_id
		FROM movies
		WHERE title = $1
	`

	var movieDB movieDTO
	err := r.db.GetContext(ctx, &movieDB, query, title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to search for movie entry by title: %w", err)
	}

	return movieDB.toDomain(), nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (model.Movie, error) {
	query := `
		SELECT id, title, description, date, user_id
		FROM movies
		WHERE id = $1
	`

	var movieDB movieDTO
	err := r.db.GetContext(ctx, &movieDB, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, model.ErrNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to search for movie entry by id: %w", err)
	}

	return movieDB.toDomain(), nil
}

// Count returns the number of movies, optionally narrowed to a single
// creator. The feed uses it for page arithmetic, so it ignores limit
// and offset on purpose.
func (r *Repository) Count(ctx context.Context, creatorID *int64) (int, error) {
	var (
		total int
		err   error
	)

	if creatorID != nil {
		query := `SELECT COUNT(*) FROM movies WHERE user_id = $1`
		err = r.db.GetContext(ctx, &total, query, *creatorID)
	} else {
		query := `SELECT COUNT(*) FROM movies`
		err = r.db.GetContext(ctx, &total, query)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count movie entries: %w", err)
	}

	return total, nil
}
