package app

import (
	"log/slog"

	"github.com/humanbelnik/movierama/core/internal/config"
	http_init "github.com/humanbelnik/movierama/core/internal/delivery/http/init"
	http_auth_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/auth"
	http_logging_middleware "github.com/humanbelnik/movierama/core/internal/delivery/http/middleware/logging"
	http_movie "github.com/humanbelnik/movierama/core/internal/delivery/http/movie"
	http_pages "github.com/humanbelnik/movierama/core/internal/delivery/http/pages"
	"github.com/humanbelnik/movierama/core/internal/delivery/http/render"
	http_user "github.com/humanbelnik/movierama/core/internal/delivery/http/user"
	http_vote "github.com/humanbelnik/movierama/core/internal/delivery/http/vote"
	infra_postgres_card "github.com/humanbelnik/movierama/core/internal/infra/postgres/card"
	infra_pg_init "github.com/humanbelnik/movierama/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/humanbelnik/movierama/core/internal/infra/postgres/movie"
	infra_postgres_user "github.com/humanbelnik/movierama/core/internal/infra/postgres/user"
	infra_postgres_vote "github.com/humanbelnik/movierama/core/internal/infra/postgres/vote"
	service_auth "github.com/humanbelnik/movierama/core/internal/service/auth"
	usecase_movie "github.com/humanbelnik/movierama/core/internal/usecase/movie"
	usecase_user "github.com/humanbelnik/movierama/core/internal/usecase/user"
	usecase_vote "github.com/humanbelnik/movierama/core/internal/usecase/vote"
)

const templatesGlob = "./web/templates/*.tmpl"

func Go(cfg *config.Config) {
	logger := slog.Default()

	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	userRepository := infra_postgres_user.New(pgConn)
	movieRepository := infra_postgres_movie.New(pgConn)
	voteRepository := infra_postgres_vote.New(pgConn)
	cardRepository := infra_postgres_card.New(pgConn)

	userUC := usecase_user.New(userRepository)
	movieUC := usecase_movie.New(movieRepository, cardRepository)
	voteUC := usecase_vote.New(voteRepository, movieRepository)

	tokenService := service_auth.New(cfg.Auth.TokenSecret, 0)
	authMiddleware := http_auth_middleware.New(tokenService, userUC)

	renderer := render.Must(templatesGlob)

	controllerPool := http_init.NewControllerPool(renderer,
		http_logging_middleware.RequestLogger(logger),
		authMiddleware.Populate(),
	)
	controllerPool.AddAPI(http_user.New(userUC, tokenService))
	controllerPool.AddAPI(http_movie.New(movieUC, renderer, authMiddleware))
	controllerPool.AddAPI(http_vote.New(voteUC, authMiddleware))
	controllerPool.AddPages(http_pages.New(movieUC, userUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
