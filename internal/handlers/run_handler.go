package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tunereport/internal/responses"
	"tunereport/internal/services"
)

// runErrorStatus keeps malformed IDs (400) distinct from missing rows (404).
func runErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidRunID):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRunNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

type RunHandler struct {
	runService *services.RunService
}

func NewRunHandler(runService *services.RunService) *RunHandler {
	return &RunHandler{
		runService: runService,
	}
}

// CreateRun handles POST /api/v1/runs
func (h *RunHandler) CreateRun(c *gin.Context) {
	var req services.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	run, err := h.runService.CreateRun(req)
	if err != nil {
		responses.Fail(c, http.StatusUnprocessableEntity, err, "Failed to record tuning run")
		return
	}

	responses.Success(c, http.StatusCreated, run, "Tuning run recorded successfully")
}

// GetRun handles GET /api/v1/runs/:id
func (h *RunHandler) GetRun(c *gin.Context) {
	run, err := h.runService.GetRun(c.Param("id"))
	if err != nil {
		responses.Fail(c, runErrorStatus(err), err, "Failed to get tuning run")
		return
	}

	responses.Success(c, http.StatusOK, run, "Tuning run retrieved successfully")
}

// ListRuns handles GET /api/v1/runs?model=LOF
func (h *RunHandler) ListRuns(c *gin.Context) {
	runs, err := h.runService.ListRuns(c.Query("model"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to list tuning runs")
		return
	}

	responses.Success(c, http.StatusOK, runs, "Tuning runs retrieved successfully")
}

// DeleteRun handles DELETE /api/v1/runs/:id
func (h *RunHandler) DeleteRun(c *gin.Context) {
	if err := h.runService.DeleteRun(c.Param("id")); err != nil {
		responses.Fail(c, runErrorStatus(err), err, "Failed to delete tuning run")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Tuning run deleted successfully")
}
