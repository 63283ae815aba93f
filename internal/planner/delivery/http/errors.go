package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"day-planner/internal/planner"
	"day-planner/internal/planner/repository"
	"day-planner/pkg/response"
	"day-planner/pkg/textgen"
)

// respondError translates domain/use-case errors into the response envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	var perr *textgen.ProviderError
	switch {
	case errors.Is(err, planner.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, planner.ErrEmptyPrompt),
		errors.Is(err, planner.ErrNoTasksExtracted):
		response.Error(c, err, nil)
	case errors.As(err, &perr):
		response.BadGateway(c, err)
	case errors.Is(err, planner.ErrExtraction):
		response.Error(c, err, nil)
	case errors.Is(err, repository.ErrFailedToInsert),
		errors.Is(err, repository.ErrFailedToGet),
		errors.Is(err, repository.ErrFailedToList),
		errors.Is(err, repository.ErrFailedToUpdate),
		errors.Is(err, repository.ErrFailedToDelete):
		response.InternalError(c, err)
	default:
		response.InternalError(c, err)
	}
}
