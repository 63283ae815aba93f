package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/planner"
	"day-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	PlanDay(c *gin.Context)
	Preview(c *gin.Context)
	ListTasks(c *gin.Context)
	ToggleCompletion(c *gin.Context)
	DeleteByEventID(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
