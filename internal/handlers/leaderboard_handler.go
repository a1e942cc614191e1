package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tunereport/internal/models"
	"tunereport/internal/responses"
	"tunereport/internal/services"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	report, err := h.leaderboardService.Leaderboard()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to build leaderboard")
		return
	}

	responses.Success(c, http.StatusOK, report, "Leaderboard retrieved successfully")
}

// GetSummaries handles GET /api/v1/leaderboard/summaries
func (h *LeaderboardHandler) GetSummaries(c *gin.Context) {
	summaries, err := h.leaderboardService.Summaries()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to build model summaries")
		return
	}

	responses.Success(c, http.StatusOK, summaries, "Model summaries retrieved successfully")
}

// ListDetectors handles GET /api/v1/models
func (h *LeaderboardHandler) ListDetectors(c *gin.Context) {
	responses.Success(c, http.StatusOK, models.Detectors, "Supported models retrieved successfully")
}
