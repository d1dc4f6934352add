package api

import (
	"thrust-planner/internal/api/handlers"
	"thrust-planner/internal/api/middleware"
	"thrust-planner/internal/data"
	"thrust-planner/internal/metrics"
	"thrust-planner/internal/planner"

	"github.com/gin-gonic/gin"
	kitlog "github.com/go-kit/log"
)

// Deps are the collaborators the router wires into handlers. Cache, Metrics,
// Limiter and AccessLog may be nil.
type Deps struct {
	Engine    *planner.Engine
	Catalog   *data.Catalog
	Cache     *data.ResultCache
	Metrics   *metrics.Collector
	Limiter   *middleware.IPRateLimiter
	AccessLog kitlog.Logger
}

// NewRouter builds the HTTP API.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	if d.AccessLog != nil {
		router.Use(middleware.Logger(d.AccessLog))
	}
	if d.Metrics != nil {
		router.Use(middleware.Metrics(d.Metrics))
	}

	calculateHandler := handlers.NewCalculateHandler(d.Engine, d.Catalog, d.Cache, d.Metrics)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog)
	presetsHandler := handlers.NewPresetsHandler()
	liveHandler := handlers.NewLiveHandler(calculateHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := router.Group("/api/v1")
	{
		api.GET("/catalog", catalogHandler.GetCatalog)
		api.GET("/presets", presetsHandler.ListPresets)

		limited := api.Group("", middleware.RateLimit(d.Limiter))
		limited.POST("/calculate", calculateHandler.Calculate)
		limited.POST("/calculate/compare", calculateHandler.Compare)
		limited.GET("/live", liveHandler.Serve)

		api.GET("/calculations/:id/report", calculateHandler.GetReport)
		api.GET("/calculations/:id/export", calculateHandler.GetExport)
	}

	return router
}
