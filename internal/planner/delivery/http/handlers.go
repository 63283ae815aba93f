package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
	"day-planner/internal/planner"
	"day-planner/pkg/response"
)

// PlanDay godoc
// @Summary     Plan the day from free text
// @Description Extracts tasks from the prompt and schedules each one: image, calendar event, persisted row. Per-task failures are reported in the outcome list.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Free-text schedule"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request / extraction failure"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     502  {object} response.Resp "Text-generation backend failure"
// @Router      /api/v1/planner/plan [POST]
func (h *handler) PlanDay(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PlanDay(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PlanDay: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Preview godoc
// @Summary     Preview extracted tasks
// @Description Runs extraction only; nothing is scheduled or persisted.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Free-text schedule"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request / extraction failure"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/planner/plan/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.Preview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(tasks))
}

// ListTasks godoc
// @Summary     List the owner's tasks
// @Description Returns the authenticated owner's persisted tasks, newest first.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	tasks, err := h.uc.ListTasks(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// ToggleCompletion godoc
// @Summary     Toggle task completion
// @Description Flips the completion flag on one task. Toggling twice restores the original state.
// @Tags        Planner
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id}/toggle [POST]
func (h *handler) ToggleCompletion(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, planner.ErrTaskNotFound, nil)
		return
	}

	task, err := h.uc.ToggleCompletion(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(task))
}

// DeleteByEventID godoc
// @Summary     Delete a task by calendar event id
// @Description Deletes the calendar event first; the local row is removed only after the remote delete succeeds.
// @Tags        Planner
// @Produce     json
// @Param       eventId path string true "Calendar event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/events/{eventId} [DELETE]
func (h *handler) DeleteByEventID(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	eventID := c.Param("eventId")
	if eventID == "" {
		response.Error(c, planner.ErrTaskNotFound, nil)
		return
	}

	if err := h.uc.DeleteByEventID(ctx, sc, eventID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteByEventID: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
