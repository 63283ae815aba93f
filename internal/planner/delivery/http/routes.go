package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	planner := rg.Group("/planner")
	{
		planner.POST("/plan", mw.Auth(), h.PlanDay)
		planner.POST("/plan/preview", mw.Auth(), h.Preview)
		planner.GET("/tasks", mw.Auth(), h.ListTasks)
		planner.POST("/tasks/:id/toggle", mw.Auth(), h.ToggleCompletion)
		planner.DELETE("/tasks/events/:eventId", mw.Auth(), h.DeleteByEventID)
	}
}
