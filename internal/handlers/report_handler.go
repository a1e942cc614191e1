package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tunereport/internal/responses"
	"tunereport/internal/services"
)

func snapshotErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidSnapshotID):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSnapshotNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

var contentTypes = map[string]string{
	services.FormatMarkdown: "text/markdown; charset=utf-8",
	services.FormatLaTeX:    "application/x-latex",
	services.FormatCSV:      "text/csv; charset=utf-8",
}

// GetReport handles GET /api/v1/reports/:format
func (h *ReportHandler) GetReport(c *gin.Context) {
	format := c.Param("format")

	contentType, ok := contentTypes[format]
	if !ok {
		responses.Fail(c, http.StatusBadRequest, nil, "Unsupported report format (use markdown, latex or csv)")
		return
	}

	content, err := h.reportService.Render(format)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to render report")
		return
	}

	c.Data(http.StatusOK, contentType, []byte(content))
}

// CheckReport handles GET /api/v1/reports/check
func (h *ReportHandler) CheckReport(c *gin.Context) {
	problems, err := h.reportService.Check()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to validate report")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"valid":    len(problems) == 0,
		"problems": problems,
	}, "Report validation completed")
}

// ListSnapshots handles GET /api/v1/reports/snapshots?limit=20
func (h *ReportHandler) ListSnapshots(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	snapshots, err := h.reportService.ListSnapshots(limit)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list snapshots")
		return
	}

	responses.Success(c, http.StatusOK, snapshots, "Snapshots retrieved successfully")
}

// GetLatestSnapshot handles GET /api/v1/reports/snapshots/latest/:format
func (h *ReportHandler) GetLatestSnapshot(c *gin.Context) {
	format := c.Param("format")
	if _, ok := contentTypes[format]; !ok {
		responses.Fail(c, http.StatusBadRequest, nil, "Unsupported report format (use markdown, latex or csv)")
		return
	}

	snapshot, err := h.reportService.LatestSnapshot(format)
	if err != nil {
		responses.Fail(c, snapshotErrorStatus(err), err, "Failed to get latest snapshot")
		return
	}

	c.Data(http.StatusOK, contentTypes[snapshot.Format], []byte(snapshot.Content))
}

// GetSnapshot handles GET /api/v1/reports/snapshots/:id
func (h *ReportHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.reportService.GetSnapshot(c.Param("id"))
	if err != nil {
		responses.Fail(c, snapshotErrorStatus(err), err, "Failed to get snapshot")
		return
	}

	contentType, ok := contentTypes[snapshot.Format]
	if !ok {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, []byte(snapshot.Content))
}
