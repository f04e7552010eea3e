package infra_postgres_card

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/humanbelnik/movierama/core/internal/model"
)

type cardDTO struct {
	ID          int64        `db:"id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Date        time.Time    `db:"date"`
	UserID      int64        `db:"user_id"`
	UserName    string       `db:"name"`
	Likes       int          `db:"likes"`
	Hates       int          `db:"hates"`
	Vote        sql.NullBool `db:"vote"`
}

func (d cardDTO) toDomain(now time.Time) model.MovieCard {
	card := model.MovieCard{
		Movie: model.Movie{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Date:        d.Date,
			UserID:      d.UserID,
		},
		UserName:    d.UserName,
		Likes:       d.Likes,
		Hates:       d.Hates,
		DaysElapsed: daysElapsed(d.Date, now),
	}

	if d.Vote.Valid {
		vote := d.Vote.Bool
		card.Vote = &vote
	}

	return card
}

// daysElapsed renders the submission age the way the feed shows it:
// the absolute floored day difference, so anything under a full day
// since submission reads "1 days ago".
func daysElapsed(date, now time.Time) string {
	days := math.Abs(math.Floor(date.Sub(now).Hours() / 24))
	return fmt.Sprintf("%d days ago", int(days))
}
