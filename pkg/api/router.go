package api

import (
	"time"

	"url2md-go/pkg/api/handlers"
	"url2md-go/pkg/api/middleware"
	"url2md-go/pkg/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the HTTP surface around a pipeline service.
func NewRouter(service *pipeline.Service) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())

	state := &handlers.State{
		StartedAt:   time.Now(),
		EngineReady: service.EngineReady(),
	}

	router.GET("/", handlers.Root(state))
	router.GET("/health", handlers.Health(state))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/convert", handlers.ConvertPost(service))
	router.GET("/convert", handlers.ConvertGet(service))

	return router
}
