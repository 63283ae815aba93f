package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"day-planner/internal/model"
	"day-planner/internal/planner"
	repo "day-planner/internal/planner/repository"
	"day-planner/pkg/gcalendar"
)

// PlanDay extracts tasks from free text and schedules each one: image,
// calendar event, persisted row. One failed task is recorded and skipped;
// the rest of the batch continues. Only an extraction failure aborts.
func (uc *implUseCase) PlanDay(ctx context.Context, sc model.Scope, input planner.PlanDayInput) (planner.PlanDayOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return planner.PlanDayOutput{}, planner.ErrEmptyPrompt
	}

	tasks, err := uc.extractTasks(ctx, input.Prompt)
	if err != nil {
		return planner.PlanDayOutput{}, err
	}

	outcomes := make([]planner.TaskOutcome, 0, len(tasks))
	for _, task := range tasks {
		// Pace the loop so downstream services see at most one task every
		// PacingDelay. The first wait is free, each later one spaces out.
		if err := uc.limiter.Wait(ctx); err != nil {
			return planner.PlanDayOutput{Outcomes: outcomes}, err
		}
		outcomes = append(outcomes, uc.scheduleTask(ctx, sc, task))
	}

	return planner.PlanDayOutput{Outcomes: outcomes}, nil
}

// scheduleTask runs one task through image → calendar → store. Any failure
// ends this task only.
func (uc *implUseCase) scheduleTask(ctx context.Context, sc model.Scope, task planner.ExtractedTask) planner.TaskOutcome {
	fail := func(err error) planner.TaskOutcome {
		uc.l.Warnf(ctx, "uc.PlanDay task %q: %v", task.Title, err)
		return planner.TaskOutcome{Title: task.Title, Success: false, Error: err.Error()}
	}

	// Always recompute whole minutes from the extracted range; a model-sent
	// duration field would drift from it. A reversed or empty range means the
	// model misread the text, so fail this task before any side effects.
	duration := int64(task.EndTime.Sub(task.StartTime).Minutes())
	if duration <= 0 {
		return fail(fmt.Errorf("end time %s is not after start time %s",
			task.EndTime.Format(time.RFC3339), task.StartTime.Format(time.RFC3339)))
	}

	image, err := uc.image.Generate(ctx, buildImagePrompt(task.Title, task.Description))
	if err != nil {
		return fail(err)
	}

	profile, err := uc.profile.GetProfile(ctx, sc.UserID)
	if err != nil {
		return fail(err)
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      uc.cfg.CalendarID,
		Summary:         task.Title,
		Description:     task.Description,
		StartTime:       task.StartTime,
		DurationMinutes: duration,
		Timezone:        task.Timezone,
		GuestName:       profile.FullName,
		GuestEmail:      profile.PrimaryEmail,
	})
	if err != nil {
		return fail(err)
	}

	// No compensating calendar delete on a failed insert; the event stays
	// and the user removes it through the normal delete path.
	if _, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:           task.Title,
		Description:     task.Description,
		StartTime:       task.StartTime,
		EndTime:         task.EndTime,
		Timezone:        task.Timezone,
		Base64Image:     image,
		OwnerID:         sc.UserID,
		CalendarEventID: event.ID,
	}); err != nil {
		return fail(err)
	}

	return planner.TaskOutcome{Title: task.Title, Success: true}
}
