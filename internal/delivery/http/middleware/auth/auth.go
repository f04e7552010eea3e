package http_auth_middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	service_auth "github.com/humanbelnik/movierama/core/internal/service/auth"

	"github.com/humanbelnik/movierama/core/internal/model"
)

const (
	// TokenCookie is the cookie the login endpoint sets and this
	// middleware reads.
	TokenCookie = "token"

	userKey = "auth_user"
)

type TokenValidator interface {
	Validate(token string) (*service_auth.Claims, bool)
}

type UserFinder interface {
	Find(ctx context.Context, id int64) (model.User, error)
}

type Middleware struct {
	tokens TokenValidator
	users  UserFinder
	logger *slog.Logger
}

type MiddlewareOption func(*Middleware)

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func New(tokens TokenValidator, users UserFinder, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		tokens: tokens,
		users:  users,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Populate resolves the token cookie into a user and stores it in the
// request context. A missing, malformed or expired token makes the
// request anonymous; it never fails the request.
func (m *Middleware) Populate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(TokenCookie)
		if err != nil || token == "" {
			ctx.Next()
			return
		}

		claims, ok := m.tokens.Validate(token)
		if !ok {
			m.logger.Warn("failed to verify token cookie")
			ctx.Next()
			return
		}

		user, err := m.users.Find(ctx.Request.Context(), claims.ID)
		if err != nil {
			m.logger.Warn("token bearer no longer resolves to a user",
				slog.Int64("user_id", claims.ID),
				slog.String("error", err.Error()),
			)
			ctx.Next()
			return
		}

		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// Required aborts with an empty 401 unless Populate attached a user.
func (m *Middleware) Required() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := CurrentUser(ctx); !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user Populate stored, if any.
func CurrentUser(ctx *gin.Context) (model.User, bool) {
	v, ok := ctx.Get(userKey)
	if !ok {
		return model.User{}, false
	}

	user, ok := v.(model.User)
	return user, ok
}
