package infra_postgres_user

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

type userDTO struct {
	ID    int64  `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"hash"`
}

func (d userDTO) toDomain() model.User {
	return model.User{
		ID:    d.ID,
		Email: d.Email,
		Name:  d.Name,
		Hash:  d.Hash,
	}
}

func (r *Repository) Create(ctx context.Context, u model.User) (model.User, error) {
	query := `
		INSERT INTO users (email, name, hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, u.Email, u.Name, u.Hash)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return model.User{}, model.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("failed to create user entry: %w", err)
	}

	u.ID = id
	return u, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT id, email, name, hash
		FROM users
		WHERE email = $1
	`

	var userDB userDTO
	err := r.db.GetContext(ctx, &userDB, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to search user entry: %w", err)
	}

	return userDB.toDomain(), nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (model.User, error) {
	query := `
		SELECT id, email, name, hash
		FROM users
		WHERE id = $1
	`

	var userDB userDTO
	err := r.db.GetContext(ctx, &userDB, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to search user entry: %w", err)
	}

	return userDB.toDomain(), nil
}
