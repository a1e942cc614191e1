package routes

import (
	"github.com/gin-gonic/gin"

	"tunereport/internal/handlers"
)

type ReportRoutes struct {
	handler *handlers.ReportHandler
}

func NewReportRoutes(handler *handlers.ReportHandler) *ReportRoutes {
	return &ReportRoutes{handler: handler}
}

func (r *ReportRoutes) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/check", r.handler.CheckReport)
		reports.GET("/snapshots", r.handler.ListSnapshots)
		reports.GET("/snapshots/latest/:format", r.handler.GetLatestSnapshot)
		reports.GET("/snapshots/:id", r.handler.GetSnapshot)
		reports.GET("/:format", r.handler.GetReport)
	}
}
