package http_user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	http_auth_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/movierama/core/internal/model"
	service_auth "github.com/humanbelnik/movierama/core/internal/service/auth"
	usecase_user "github.com/humanbelnik/movierama/core/internal/usecase/user"
	"github.com/humanbelnik/movierama/core/internal/usecase/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.UserRepository, *service_auth.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := mocks.NewUserRepository(t)
	tokens := service_auth.New("test-secret", time.Hour)
	controller := New(usecase_user.New(users), tokens)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	return router, users, tokens
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRegisterCreatesUser(t *testing.T) {
	router, users, _ := newRouter(t)

	users.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(model.User{}, model.ErrNotFound).Once()
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "jane@example.com" && u.Name == "Jane" &&
			bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte("secret123")) == nil
	})).Return(model.User{ID: 7, Email: "jane@example.com", Name: "Jane"}, nil).Once()

	rec := perform(router, http.MethodPost, "/api/register",
		`{"email":"jane@example.com","name":"Jane","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"jane@example.com"`)
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, users, _ := newRouter(t)

	users.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(model.User{ID: 7, Email: "jane@example.com"}, nil).Once()

	rec := perform(router, http.MethodPost, "/api/register",
		`{"email":"jane@example.com","name":"Jane","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"User with email jane@example.com already exists"}`, rec.Body.String())
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	router, _, _ := newRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{name: "short password", body: `{"email":"jane@example.com","name":"Jane","password":"abc"}`},
		{name: "bad email", body: `{"email":"not-an-email","name":"Jane","password":"secret123"}`},
		{name: "short name", body: `{"email":"jane@example.com","name":"J","password":"secret123"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := perform(router, http.MethodPost, "/api/register", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid body"}`, rec.Body.String())
		})
	}
}

func TestLoginSetsTokenCookie(t *testing.T) {
	router, users, tokens := newRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(model.User{ID: 7, Email: "jane@example.com", Name: "Jane", Hash: string(hash)}, nil).Once()

	rec := perform(router, http.MethodPost, "/api/login",
		`{"email":"jane@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == http_auth_middleware.TokenCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the token cookie")
	assert.True(t, cookie.HttpOnly)

	claims, ok := tokens.Validate(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	router, users, _ := newRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(model.User{ID: 7, Email: "jane@example.com", Hash: string(hash)}, nil).Once()

	rec := perform(router, http.MethodPost, "/api/login",
		`{"email":"jane@example.com","password":"wrong-one"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestLoginUnknownEmail(t *testing.T) {
	router, users, _ := newRouter(t)

	users.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(model.User{}, model.ErrNotFound).Once()

	rec := perform(router, http.MethodPost, "/api/login",
		`{"email":"ghost@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}
