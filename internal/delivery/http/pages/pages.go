package http_pages

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_auth_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movierama/core/internal/model"
	usecase_movie "github.com/humanbelnik/movierama/core/internal/usecase/movie"
	usecase_user "github.com/humanbelnik/movierama/core/internal/usecase/user"
)

const (
	defaultPageLimit = 5
)

// PageData feeds the full-page templates. ProfileUser is set only on
// the user profile page.
type PageData struct {
	User        *model.User
	ProfileUser *model.User
	Movies      []model.MovieCard
	TotalMovies int
	Page        int
	Limit       int
}

type Controller struct {
	movies *usecase_movie.Usecase
	users  *usecase_user.Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(movies *usecase_movie.Usecase, users *usecase_user.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		movies: movies,
		users:  users,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.home)
	router.GET("/login", c.login)
	router.GET("/register", c.register)
	router.GET("/users/:id", c.userProfile)
}

func (c *Controller) home(ctx *gin.Context) {
	viewer, _ := currentUser(ctx)

	feed, err := c.movies.Feed(ctx.Request.Context(), firstPageQuery(viewer, nil))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "home", PageData{
		User:        viewer,
		Movies:      feed.Movies,
		TotalMovies: feed.TotalMovies,
		Page:        0,
		Limit:       defaultPageLimit,
	})
}

func (c *Controller) login(ctx *gin.Context) {
	if _, ok := currentUser(ctx); ok {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	ctx.HTML(http.StatusOK, "login", PageData{})
}

func (c *Controller) register(ctx *gin.Context) {
	if _, ok := currentUser(ctx); ok {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	ctx.HTML(http.StatusOK, "register", PageData{})
}

func (c *Controller) userProfile(ctx *gin.Context) {
	creatorID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || creatorID <= 0 {
		ctx.HTML(http.StatusNotFound, "404", PageData{})
		return
	}

	profileUser, err := c.users.Find(ctx.Request.Context(), creatorID)
	if err != nil {
		ctx.HTML(http.StatusNotFound, "404", PageData{})
		return
	}

	viewer, _ := currentUser(ctx)
	feed, err := c.movies.Feed(ctx.Request.Context(), firstPageQuery(viewer, &creatorID))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "user", PageData{
		User:        viewer,
		ProfileUser: &profileUser,
		Movies:      feed.Movies,
		TotalMovies: feed.TotalMovies,
		Page:        0,
		Limit:       defaultPageLimit,
	})
}

func (c *Controller) renderError(ctx *gin.Context, err error) {
	c.logger.Error("failed to render page",
		slog.String("path", ctx.Request.URL.Path),
		slog.String("error", err.Error()),
	)
	ctx.HTML(http.StatusInternalServerError, "500", PageData{})
}

func currentUser(ctx *gin.Context) (*model.User, bool) {
	user, ok := http_auth_middleware.CurrentUser(ctx)
	if !ok {
		return nil, false
	}
	return &user, true
}

func firstPageQuery(viewer *model.User, creatorID *int64) model.FeedQuery {
	q := model.FeedQuery{
		Sort:      model.SortDesc,
		Order:     model.OrderDate,
		Limit:     defaultPageLimit,
		Offset:    0,
		CreatorID: creatorID,
	}
	if viewer != nil {
		q.ViewerID = &viewer.ID
	}
	return q
}
