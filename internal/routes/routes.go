package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tunereport/internal/handlers"
	"tunereport/internal/middlewares"
)

func RegisterRoutes(
	router *gin.Engine,
	runHandler *handlers.RunHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	reportHandler *handlers.ReportHandler,
	apiToken string,
) {
	api := router.Group("/api/v1")
	protected := router.Group("/api/v1")
	protected.Use(middlewares.RequireToken(apiToken))

	runRoutes := NewRunRoutes(runHandler)
	runRoutes.RegisterRoutes(api, protected)

	leaderboardRoutes := NewLeaderboardRoutes(leaderboardHandler)
	leaderboardRoutes.RegisterRoutes(api)

	reportRoutes := NewReportRoutes(reportHandler)
	reportRoutes.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
