package http

import (
	"net/http"

	"github.com/MikeRez0/payopt/internal/adapter/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

// NewRouter mounts the allocation API. metrics may be nil.
func NewRouter(
	conf *config.App,
	allocationHandler *AllocationHandler,
	metrics http.Handler,
	logger *zap.Logger) (*Router, error) {

	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	api := router.Group("/api")
	{
		allocations := api.Group("/allocations")
		{
			allocations.POST("", allocationHandler.CreateAllocation)
			allocations.GET("/:id", allocationHandler.GetAllocation)
		}
	}

	return &Router{router}, nil
}
