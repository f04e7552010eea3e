package usecase_user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/humanbelnik/movierama/core/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

var (
	ErrFailedToRegister = errors.New("failed to register user")
	ErrFailedToAuth     = errors.New("failed to authenticate user")
	ErrFailedToFind     = errors.New("failed to find user")
)

type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
}

type Usecase struct {
	users  UserRepository
	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(users UserRepository, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		users:  users,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Register creates a new account with a bcrypt-hashed password. The
// email pre-check only exists for the friendly message; the unique
// constraint on users.email decides races.
func (u *Usecase) Register(ctx context.Context, email, name, password string) (model.User, error) {
	_, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		return model.User{}, model.Rule("User with email %s already exists", email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToRegister, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToRegister, err)
	}

	user, err := u.users.Create(ctx, model.User{
		Email: email,
		Name:  name,
		Hash:  string(hash),
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return model.User{}, model.Rule("User with email %s already exists", email)
		}
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToRegister, err)
	}

	return user, nil
}

// Auth verifies credentials. Unknown email and wrong password yield
// the same message so the endpoint cannot be used to enumerate users.
func (u *Usecase) Auth(ctx context.Context, email, password string) (model.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			u.logger.Warn("auth attempt for unknown email", slog.String("email", email))
			return model.User{}, model.Rule("Invalid credentials")
		}
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToAuth, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)) != nil {
		u.logger.Warn("invalid credentials", slog.String("email", email))
		return model.User{}, model.Rule("Invalid credentials")
	}

	return user, nil
}

func (u *Usecase) Find(ctx context.Context, id int64) (model.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, fmt.Errorf("user %d: %w", id, model.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToFind, err)
	}

	return user, nil
}
