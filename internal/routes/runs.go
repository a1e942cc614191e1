package routes

import (
	"github.com/gin-gonic/gin"

	"tunereport/internal/handlers"
)

type RunRoutes struct {
	handler *handlers.RunHandler
}

func NewRunRoutes(handler *handlers.RunHandler) *RunRoutes {
	return &RunRoutes{handler: handler}
}

// RegisterRoutes wires the read endpoints on the public group and the
// mutating endpoints on the token-guarded group.
func (r *RunRoutes) RegisterRoutes(public, protected *gin.RouterGroup) {
	runs := public.Group("/runs")
	{
		runs.GET("", r.handler.ListRuns)
		runs.GET("/:id", r.handler.GetRun)
	}

	guarded := protected.Group("/runs")
	{
		guarded.POST("", r.handler.CreateRun)
		guarded.DELETE("/:id", r.handler.DeleteRun)
	}
}
