package model

import "time"

// Task is a single time-blocked activity extracted from a user's day plan.
// A row exists only after the matching calendar event was created.
type Task struct {
	ID              string    // UUID assigned at insert
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         time.Time // always >= StartTime
	Timezone        string    // IANA label, informational only
	Base64Image     string    // synthesized illustration, may be empty
	OwnerID         string    // identity provider user id
	CalendarEventID string    // external calendar event id, set once created
	Completed       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DurationMinutes is the event length in whole minutes, always recomputed
// from the stored time range rather than trusted from any caller field.
func (t Task) DurationMinutes() int64 {
	return int64(t.EndTime.Sub(t.StartTime) / time.Minute)
}
