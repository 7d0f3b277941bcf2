package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, metrics http.Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/tag", handler.Tag)         // POST /api/v1/tag
		v1.POST("/score", handler.Score)     // POST /api/v1/score
		v1.POST("/analyze", handler.Analyze) // POST /api/v1/analyze

		runs := v1.Group("/runs")
		{
			runs.GET("", handler.ListRuns)   // GET /api/v1/runs
			runs.GET("/:id", handler.GetRun) // GET /api/v1/runs/:id
		}
	}
}
