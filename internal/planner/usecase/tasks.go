package usecase

import (
	"context"
	"strings"

	"day-planner/internal/model"
	"day-planner/internal/planner"
	repo "day-planner/internal/planner/repository"
)

// Preview extracts tasks without creating anything.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input planner.PlanDayInput) ([]planner.ExtractedTask, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, planner.ErrEmptyPrompt
	}
	return uc.extractTasks(ctx, input.Prompt)
}

// ListTasks returns the owner's persisted tasks, newest first.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// ToggleCompletion flips the completion flag on one of the owner's tasks.
// Returns ErrTaskNotFound when the id does not exist for this owner.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCompletion GetOneTask: %v", err)
		return model.Task{}, err
	}
	if existing.ID == "" {
		return model.Task{}, planner.ErrTaskNotFound
	}

	task, err := uc.repo.UpdateCompletion(ctx, repo.UpdateCompletionOptions{
		ID:        taskID,
		Completed: !existing.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleCompletion UpdateCompletion: %v", err)
		return model.Task{}, err
	}
	return task, nil
}

// DeleteByEventID removes the calendar event, then the local row. The row is
// kept when the remote delete fails so no local state disappears without a
// confirmed remote deletion.
func (uc *implUseCase) DeleteByEventID(ctx context.Context, sc model.Scope, eventID string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{OwnerID: sc.UserID, CalendarEventID: eventID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteByEventID GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return planner.ErrTaskNotFound
	}

	if err := uc.calendar.DeleteEvent(ctx, uc.cfg.CalendarID, eventID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteByEventID DeleteEvent: %v", err)
		return err
	}

	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{OwnerID: sc.UserID, CalendarEventID: eventID}); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteByEventID DeleteTask: %v", err)
		return err
	}
	return nil
}
