package infra_postgres_movie

import (
	"time"

	"github.com/humanbelnik/movierama/core/internal/model"
)

type movieDTO struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	UserID      int64     `db:"user_id"`
}

func (d movieDTO) toDomain() model.Movie {
	return model.Movie{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		UserID:      d.UserID,
	}
}
