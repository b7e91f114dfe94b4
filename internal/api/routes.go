package api

import (
	"github.com/gin-gonic/gin"

	"github.com/funnelscope/awareness-classifier/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Classification endpoints
		classify := v1.Group("/classify")
		{
			classify.POST("", handler.Classify)            // POST /api/v1/classify
			classify.POST("/batch", handler.ClassifyBatch) // POST /api/v1/classify/batch
		}

		// Per-project endpoints
		projects := v1.Group("/projects/:project_id")
		{
			projects.POST("/analyze", handler.Analyze)               // POST /api/v1/projects/:project_id/analyze
			projects.GET("/phases", handler.GetPhases)               // GET  /api/v1/projects/:project_id/phases
			projects.POST("/phases/reset", handler.ResetPhases)      // POST /api/v1/projects/:project_id/phases/reset
			projects.GET("/recommendation", handler.GetRecommendation) // GET /api/v1/projects/:project_id/recommendation
			projects.GET("/distribution", handler.GetDistribution)   // GET  /api/v1/projects/:project_id/distribution

			// Phase definition mutations
			phase := projects.Group("/phases/:phase")
			{
				phase.POST("/indicators", handler.AddIndicator)          // POST   .../phases/:phase/indicators
				phase.DELETE("/indicators/:id", handler.RemoveIndicator) // DELETE .../phases/:phase/indicators/:id
				phase.POST("/angles", handler.AddAngle)                  // POST   .../phases/:phase/angles
				phase.DELETE("/angles/:id", handler.RemoveAngle)         // DELETE .../phases/:phase/angles/:id
			}
		}
	}
}
