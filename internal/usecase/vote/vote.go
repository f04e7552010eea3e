package usecase_vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/humanbelnik/movierama/core/internal/model"
)

var (
	ErrFailedToVote   = errors.New("failed to save vote")
	ErrFailedToRemove = errors.New("failed to remove vote")
)

type VoteRepository interface {
	Upsert(ctx context.Context, v model.Vote) (model.Vote, error)
	Delete(ctx context.Context, userID, movieID int64) error
}

type MovieRepository interface {
	FindByID(ctx context.Context, id int64) (model.Movie, error)
}

type Usecase struct {
	votes  VoteRepository
	movies MovieRepository
}

func New(votes VoteRepository, movies MovieRepository) *Usecase {
	return &Usecase{
		votes:  votes,
		movies: movies,
	}
}

// Create casts or changes a vote. The movie must exist and must not be
// the voter's own submission; voting twice overwrites the previous
// like/hate value instead of failing.
func (u *Usecase) Create(ctx context.Context, v model.Vote) (model.Vote, error) {
	movie, err := u.movies.FindByID(ctx, v.MovieID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Vote{}, model.Rule("Movie does not exist")
		}
		return model.Vote{}, fmt.Errorf("%w: %w", ErrFailedToVote, err)
	}

	if movie.UserID == v.UserID {
		return model.Vote{}, model.Rule("User who submitted the movie can't vote it")
	}

	vote, err := u.votes.Upsert(ctx, v)
	if err != nil {
		return model.Vote{}, fmt.Errorf("%w: %w", ErrFailedToVote, err)
	}

	return vote, nil
}

// Remove retracts a user's vote on a movie. Removing a vote that was
// never cast is an error the client can act on, not a silent success.
func (u *Usecase) Remove(ctx context.Context, userID, movieID int64) error {
	if err := u.votes.Delete(ctx, userID, movieID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Rule("Failed to remove vote")
		}
		return fmt.Errorf("%w: %w", ErrFailedToRemove, err)
	}

	return nil
}
