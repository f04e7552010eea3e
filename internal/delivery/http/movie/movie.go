package http_movie

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/movierama/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movierama/core/internal/delivery/http/render"
	"github.com/humanbelnik/movierama/core/internal/model"
	usecase_movie "github.com/humanbelnik/movierama/core/internal/usecase/movie"
)

type CreateMovieRequestDTO struct {
	Title       string `json:"title" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"required,min=6,max=1000"`
}

// FeedQueryDTO mirrors the feed's query string. The binding rules are
// the allow-list: anything outside them is a 400, never a SQL
// fragment.
type FeedQueryDTO struct {
	Order     string `form:"order,default=date" binding:"oneof=date likes hates"`
	Sort      string `form:"sort,default=DESC" binding:"oneof=ASC DESC"`
	Page      int    `form:"page,default=0" binding:"gte=0"`
	Limit     int    `form:"limit,default=5" binding:"gte=1,lte=10"`
	CreatorID *int64 `form:"creatorId" binding:"omitempty,gt=0"`
}

func (q FeedQueryDTO) toFeedQuery(viewerID *int64) model.FeedQuery {
	return model.FeedQuery{
		Sort:      model.Sort(q.Sort),
		Order:     model.Order(q.Order),
		Limit:     q.Limit,
		Offset:    q.Page * q.Limit,
		CreatorID: q.CreatorID,
		ViewerID:  viewerID,
	}
}

type MovieResponseDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"userId"`
	Date        time.Time `json:"date"`
}

func convertFromMovie(m model.Movie) MovieResponseDTO {
	return MovieResponseDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		UserID:      m.UserID,
		Date:        m.Date,
	}
}

type FeedMetaDTO struct {
	TotalMovies int `json:"totalMovies"`
}

type FeedResponseDTO struct {
	HTML string      `json:"html"`
	Data FeedMetaDTO `json:"data"`
}

type Controller struct {
	uc       *usecase_movie.Usecase
	renderer *render.Renderer
	auth     *http_auth_middleware.Middleware
	logger   *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc *usecase_movie.Usecase,
	renderer *render.Renderer,
	auth *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:       uc,
		renderer: renderer,
		auth:     auth,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.POST("", c.auth.Required(), c.createMovie)
	movies.GET("", c.getMovies)
}

func (c *Controller) createMovie(ctx *gin.Context) {
	user, _ := http_auth_middleware.CurrentUser(ctx)

	var req CreateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid create movie body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Error: "Invalid body"})
		return
	}

	movie, err := c.uc.Create(ctx.Request.Context(), req.Title, req.Description, user.ID)
	if err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.DataResponse{Data: convertFromMovie(movie)})
}

func (c *Controller) getMovies(ctx *gin.Context) {
	var query FeedQueryDTO
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.logger.Warn("invalid movies query", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Error: "Invalid query"})
		return
	}

	var (
		viewer   *model.User
		viewerID *int64
	)
	if user, ok := http_auth_middleware.CurrentUser(ctx); ok {
		viewer = &user
		viewerID = &user.ID
	}

	feed, err := c.uc.Feed(ctx.Request.Context(), query.toFeedQuery(viewerID))
	if err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	html, err := c.renderer.MoviesList(viewer, feed.Movies)
	if err != nil {
		http_common.RespondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, FeedResponseDTO{
		HTML: html,
		Data: FeedMetaDTO{TotalMovies: feed.TotalMovies},
	})
}
