package planner

import (
	"context"

	"day-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// PlanDay runs the full pipeline: extract tasks from the prompt, then per
	// task generate an image, create a calendar event and persist the row.
	// Extraction failure aborts the batch; per-task failures are reported in
	// the output and never abort sibling tasks.
	PlanDay(ctx context.Context, sc model.Scope, input PlanDayInput) (PlanDayOutput, error)

	// Preview extracts tasks from the prompt without any side effects.
	Preview(ctx context.Context, sc model.Scope, input PlanDayInput) ([]ExtractedTask, error)

	// ListTasks returns the owner's persisted tasks, newest first.
	ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// ToggleCompletion flips the completion flag on one task.
	ToggleCompletion(ctx context.Context, sc model.Scope, taskID string) (model.Task, error)

	// DeleteByEventID deletes the calendar event first, then the local row.
	// If the remote delete fails the row is kept.
	DeleteByEventID(ctx context.Context, sc model.Scope, eventID string) error
}
