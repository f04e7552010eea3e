package http_pages

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	http_auth_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movierama/core/internal/delivery/http/render"
	"github.com/humanbelnik/movierama/core/internal/model"
	service_auth "github.com/humanbelnik/movierama/core/internal/service/auth"
	usecase_movie "github.com/humanbelnik/movierama/core/internal/usecase/movie"
	movie_mocks "github.com/humanbelnik/movierama/core/internal/usecase/movie/mocks"
	usecase_user "github.com/humanbelnik/movierama/core/internal/usecase/user"
	user_mocks "github.com/humanbelnik/movierama/core/internal/usecase/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *gin.Engine
	movies *movie_mocks.MovieRepository
	cards  *movie_mocks.CardRepository
	users  *user_mocks.UserRepository
	tokens *service_auth.Service
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	movies := movie_mocks.NewMovieRepository(t)
	cards := movie_mocks.NewCardRepository(t)
	users := user_mocks.NewUserRepository(t)
	tokens := service_auth.New("test-secret", time.Hour)

	userUC := usecase_user.New(users)
	auth := http_auth_middleware.New(tokens, userUC)
	controller := New(usecase_movie.New(movies, cards), userUC)

	router := gin.New()
	router.SetHTMLTemplate(render.Must("../../../../web/templates/*.tmpl").Template())
	router.Use(auth.Populate())
	controller.RegisterRoutes(router.Group("/"))

	return &testEnv{
		router: router,
		movies: movies,
		cards:  cards,
		users:  users,
		tokens: tokens,
	}
}

func (e *testEnv) loginAs(t *testing.T, user model.User) *http.Cookie {
	t.Helper()

	token, err := e.tokens.Issue(user)
	require.NoError(t, err)
	e.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	return &http.Cookie{Name: http_auth_middleware.TokenCookie, Value: token}
}

func (e *testEnv) perform(target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func (e *testEnv) expectFirstPage(total int, cards []model.MovieCard) {
	e.movies.On("Count", mock.Anything, mock.Anything).Return(total, nil).Once()
	e.cards.On("List", mock.Anything, mock.MatchedBy(func(q model.FeedQuery) bool {
		return q.Order == model.OrderDate && q.Sort == model.SortDesc &&
			q.Limit == defaultPageLimit && q.Offset == 0
	})).Return(cards, nil).Once()
}

func TestHomeAnonymous(t *testing.T) {
	env := newEnv(t)
	env.expectFirstPage(1, []model.MovieCard{
		{
			Movie:       model.Movie{ID: 1, Title: "The Thing", Description: "Antarctic paranoia.", UserID: 3},
			UserName:    "Jane",
			DaysElapsed: "3 days ago",
		},
	})

	rec := env.perform("/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The Thing")
	assert.Contains(t, body, "Log in")
	assert.NotContains(t, body, "vote-button")
}

func TestHomeAuthenticatedShowsVoteButtons(t *testing.T) {
	env := newEnv(t)
	cookie := env.loginAs(t, model.User{ID: 2, Name: "Tom"})
	env.expectFirstPage(1, []model.MovieCard{
		{
			Movie:       model.Movie{ID: 1, Title: "The Thing", Description: "Antarctic paranoia.", UserID: 3},
			UserName:    "Jane",
			DaysElapsed: "3 days ago",
		},
	})

	rec := env.perform("/", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "vote-button")
	assert.Contains(t, body, "Tom")
}

func TestLoginPageRedirectsAuthenticated(t *testing.T) {
	env := newEnv(t)
	cookie := env.loginAs(t, model.User{ID: 2, Name: "Tom"})

	rec := env.perform("/login", cookie)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestUserProfile(t *testing.T) {
	env := newEnv(t)

	env.users.On("FindByID", mock.Anything, int64(3)).
		Return(model.User{ID: 3, Name: "Jane"}, nil).Once()
	env.expectFirstPage(1, []model.MovieCard{
		{
			Movie:       model.Movie{ID: 1, Title: "The Thing", Description: "Antarctic paranoia.", UserID: 3},
			UserName:    "Jane",
			DaysElapsed: "3 days ago",
		},
	})

	rec := env.perform("/users/3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane")
}

func TestUserProfileUnknownUser(t *testing.T) {
	env := newEnv(t)

	env.users.On("FindByID", mock.Anything, int64(99)).
		Return(model.User{}, model.ErrNotFound).Once()

	rec := env.perform("/users/99", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserProfileBadID(t *testing.T) {
	env := newEnv(t)

	rec := env.perform("/users/not-a-number", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
