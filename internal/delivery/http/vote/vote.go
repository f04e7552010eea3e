package http_vote

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/movierama/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movierama/core/internal/model"
	usecase_vote "github.com/humanbelnik/movierama/core/internal/usecase/vote"
)

type CreateVoteRequestDTO struct {
	MovieID int64 `json:"movieId" binding:"required,gt=0"`
	Like    *bool `json:"like" binding:"required"`
}

type RemoveVoteQueryDTO struct {
	MovieID int64 `form:"movieId" binding:"required,gt=0"`
}

type VoteResponseDTO struct {
	MovieID int64 `json:"movieId"`
	UserID  int64 `json:"userId"`
	Like    bool  `json:"like"`
}

func convertFromVote(v model.Vote) VoteResponseDTO {
	return VoteResponseDTO{
		MovieID: v.MovieID,
		UserID:  v.UserID,
		Like:    v.Like,
	}
}

type Controller struct {
	uc     *usecase_vote.Usecase
	auth   *http_auth_middleware.Middleware
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_vote.Usecase, auth *http_auth_middleware.Middleware, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	votes := router.Group("/votes", c.auth.Required())
	votes.POST("", c.createVote)
	votes.DELETE("", c.removeVote)
}

func (c *Controller) createVote(ctx *gin.Context) {
	user, _ := http_auth_middleware.CurrentUser(ctx)

	var req CreateVoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid create vote body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Error: "Invalid body"})
		return
	}

	vote, err := c.uc.Create(ctx.Request.Context(), model.Vote{
		MovieID: req.MovieID,
		UserID:  user.ID,
		Like:    *req.Like,
	})
	if err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.DataResponse{Data: convertFromVote(vote)})
}

func (c *Controller) removeVote(ctx *gin.Context) {
	user, _ := http_auth_middleware.CurrentUser(ctx)

	var query RemoveVoteQueryDTO
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.logger.Warn("invalid remove vote query", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Error: "Invalid query"})
		return
	}

	if err := c.uc.Remove(ctx.Request.Context(), user.ID, query.MovieID); err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	ctx.Status(http.StatusOK)
}
