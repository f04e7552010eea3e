package http_init

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/movierama/core/internal/delivery/http/render"
)

const apiPrefix = "/api"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// ControllerPool owns the gin engine and the two route groups the site
// exposes: server-rendered pages at the root and the JSON API under
// /api.
type ControllerPool struct {
	apiPool  []Controller
	pagePool []Controller
	api      *gin.RouterGroup
	pages    *gin.RouterGroup
	engine   *gin.Engine
}

func NewControllerPool(renderer *render.Renderer, globalMiddleware ...gin.HandlerFunc) *ControllerPool {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(globalMiddleware...)

	engine.SetHTMLTemplate(renderer.Template())
	engine.Static("/static", "./web/static")
	engine.NoRoute(func(ctx *gin.Context) {
		ctx.HTML(http.StatusNotFound, "404", nil)
	})

	return &ControllerPool{
		apiPool:  make([]Controller, 0, 4),
		pagePool: make([]Controller, 0, 2),
		api:      engine.Group(apiPrefix),
		pages:    engine.Group("/"),
		engine:   engine,
	}
}

func (pool *ControllerPool) AddAPI(c Controller) {
	pool.apiPool = append(pool.apiPool, c)
}

func (pool *ControllerPool) AddPages(c Controller) {
	pool.pagePool = append(pool.pagePool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.apiPool {
		c.RegisterRoutes(pool.api)
	}
	for _, c := range pool.pagePool {
		c.RegisterRoutes(pool.pages)
	}
}

func (pool *ControllerPool) Engine() *gin.Engine {
	return pool.engine
}

func (pool *ControllerPool) RunAll(port string) {
	if err := pool.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}
