package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task row.
type CreateTaskOptions struct {
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	Timezone        string
	Base64Image     string
	OwnerID         string
	CalendarEventID string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID              string
	OwnerID         string
	CalendarEventID string
}

// ListTasksOptions holds filter parameters for listing an owner's Tasks.
type ListTasksOptions struct {
	OwnerID string
}

// UpdateCompletionOptions flips the completion flag on one Task.
type UpdateCompletionOptions struct {
	ID        string
	Completed bool
}

// DeleteTaskOptions identifies the Task to remove.
type DeleteTaskOptions struct {
	OwnerID         string
	CalendarEventID string
}
