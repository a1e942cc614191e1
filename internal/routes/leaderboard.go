package routes

import (
	"github.com/gin-gonic/gin"

	"tunereport/internal/handlers"
)

type LeaderboardRoutes struct {
	handler *handlers.LeaderboardHandler
}

func NewLeaderboardRoutes(handler *handlers.LeaderboardHandler) *LeaderboardRoutes {
	return &LeaderboardRoutes{handler: handler}
}

func (r *LeaderboardRoutes) RegisterRoutes(router *gin.RouterGroup) {
	leaderboard := router.Group("/leaderboard")
	{
		leaderboard.GET("", r.handler.GetLeaderboard)
		leaderboard.GET("/summaries", r.handler.GetSummaries)
	}

	router.GET("/models", r.handler.ListDetectors)
}
