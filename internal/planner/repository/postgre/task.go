package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"day-planner/internal/model"
	repo "day-planner/internal/planner/repository"
)

const taskColumns = `id, title, description, start_time, end_time, timezone, base64_image, owner_id, calendar_event_id, completed, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var eventID sql.NullString
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.StartTime, &t.EndTime, &t.Timezone,
		&t.Base64Image, &t.OwnerID, &eventID, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.CalendarEventID = eventID.String
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, title, description, start_time, end_time, timezone, base64_image, owner_id, calendar_event_id, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), FALSE, NOW(), NOW())
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.Title, opt.Description, opt.StartTime, opt.EndTime,
		opt.Timezone, opt.Base64Image, opt.OwnerID, opt.CalendarEventID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns the owner's Task rows, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM tasks WHERE owner_id = $1 ORDER BY created_at DESC`, taskColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UpdateCompletion sets the completion flag on one Task and returns the
// updated entity. Returns zero-value Task when the id does not exist.
func (r *implRepository) UpdateCompletion(ctx context.Context, opt repo.UpdateCompletionOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET completed = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.Completed, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCompletion"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes the owner's Task row matching the calendar event id.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE owner_id = $1 AND calendar_event_id = $2`
	_, err := r.db.ExecContext(ctx, query, opt.OwnerID, opt.CalendarEventID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
