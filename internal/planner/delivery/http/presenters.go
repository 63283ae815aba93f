package http

import (
	"time"

	"day-planner/internal/model"
	"day-planner/internal/planner"
)

// --- Request DTOs ---

type planReq struct {
	Prompt string `json:"prompt" binding:"required,min=1,max=2000"`
}

func (r planReq) toInput() planner.PlanDayInput {
	return planner.PlanDayInput{Prompt: r.Prompt}
}

// --- Response DTOs ---

type outcomeResp struct {
	Title   string `json:"title"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type planResp struct {
	Outcomes []outcomeResp `json:"outcomes"`
}

func (h *handler) newPlanResp(out planner.PlanDayOutput) planResp {
	outcomes := make([]outcomeResp, len(out.Outcomes))
	for i, o := range out.Outcomes {
		outcomes[i] = outcomeResp{Title: o.Title, Success: o.Success, Error: o.Error}
	}
	return planResp{Outcomes: outcomes}
}

type extractedTaskResp struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Timezone    string    `json:"timezone"`
}

type previewResp struct {
	Tasks []extractedTaskResp `json:"tasks"`
}

func (h *handler) newPreviewResp(tasks []planner.ExtractedTask) previewResp {
	out := make([]extractedTaskResp, len(tasks))
	for i, t := range tasks {
		out[i] = extractedTaskResp{
			Title:       t.Title,
			Description: t.Description,
			StartTime:   t.StartTime,
			EndTime:     t.EndTime,
			Timezone:    t.Timezone,
		}
	}
	return previewResp{Tasks: out}
}

type taskResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Timezone        string    `json:"timezone"`
	Base64Image     string    `json:"base64_image"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newTaskResp(task model.Task) taskResp {
	return taskResp{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		StartTime:       task.StartTime,
		EndTime:         task.EndTime,
		Timezone:        task.Timezone,
		Base64Image:     task.Base64Image,
		CalendarEventID: task.CalendarEventID,
		Completed:       task.Completed,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(task model.Task) toggleResp {
	return toggleResp{Task: newTaskResp(task)}
}
