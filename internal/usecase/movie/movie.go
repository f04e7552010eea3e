package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/humanbelnik/movierama/core/internal/model"
)

var (
	ErrFailedToCreate    = errors.New("failed to create movie")
	ErrFailedToFetchFeed = errors.New("failed to fetch movies feed")
)

type MovieRepository interface {
	Create(ctx context.Context, m model.Movie) (model.Movie, error)
	FindByTitle(ctx context.Context, title string) (model.Movie, error)
	FindByID(ctx context.Context, id int64) (model.Movie, error)
	Count(ctx context.Context, creatorID *int64) (int, error)
}

type CardRepository interface {
	List(ctx context.Context, q model.FeedQuery) ([]model.MovieCard, error)
}

type Usecase struct {
	movies MovieRepository
	cards  CardRepository
	now    func() time.Time
}

func New(movies MovieRepository, cards CardRepository) *Usecase {
	return &Usecase{
		movies: movies,
		cards:  cards,
		now:    time.Now,
	}
}

// Create submits a new movie. Titles are globally unique: the lookup
// gives the friendly duplicate message, the unique constraint on
// movies.title settles concurrent submissions.
func (u *Usecase) Create(ctx context.Context, title, description string, userID int64) (model.Movie, error) {
	_, err := u.movies.FindByTitle(ctx, title)
	if err == nil {
		return model.Movie{}, model.Rule("Movie with title %s already exists", title)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToCreate, err)
	}

	movie, err := u.movies.Create(ctx, model.Movie{
		Title:       title,
		Description: description,
		UserID:      userID,
		Date:        u.now(),
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.Movie{}, model.Rule("Movie with title %s already exists", title)
		}
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToCreate, err)
	}

	return movie, nil
}

// Feed returns one page of movie cards plus the total row count the
// client needs for its pagination arithmetic.
func (u *Usecase) Feed(ctx context.Context, q model.FeedQuery) (model.Feed, error) {
	total, err := u.movies.Count(ctx, q.CreatorID)
	if err != nil {
		return model.Feed{}, fmt.Errorf("%w: %w", ErrFailedToFetchFeed, err)
	}

	cards, err := u.cards.List(ctx, q)
	if err != nil {
		return model.Feed{}, fmt.Errorf("%w: %w", ErrFailedToFetchFeed, err)
	}

	return model.Feed{
		Movies:      cards,
		TotalMovies: total,
	}, nil
}
