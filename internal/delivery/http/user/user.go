package http_user

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/movierama/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movierama/core/internal/model"
	usecase_user "github.com/humanbelnik/movierama/core/internal/usecase/user"
)

// The cookie deliberately outlives the token: an expired token inside
// a live cookie simply degrades the visitor to anonymous.
const cookieTTL = 60 * 24 * time.Hour

type TokenIssuer interface {
	Issue(user model.User) (string, error)
}

type RegisterRequestDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Password string `json:"password" binding:"required,min=6,max=25"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=25"`
}

type UserResponseDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func convertFromUser(u model.User) UserResponseDTO {
	return UserResponseDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

type Controller struct {
	uc     *usecase_user.Usecase
	tokens TokenIssuer
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_user.Usecase, tokens TokenIssuer, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		tokens: tokens,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", c.register)
	router.POST("/login", c.login)
}

func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid new user body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Error: "Invalid body"})
		return
	}

	user, err := c.uc.Register(ctx.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.DataResponse{Data: convertFromUser(user)})
}

func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid login body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Error: "Invalid body"})
		return
	}

	user, err := c.uc.Auth(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	token, err := c.tokens.Issue(user)
	if err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	ctx.SetCookie(http_auth_middleware.TokenCookie, token, int(cookieTTL.Seconds()), "/", "", false, true)
	ctx.Status(http.StatusOK)
}
