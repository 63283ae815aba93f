package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// The event end is always StartTime + DurationMinutes; callers derive the
// minutes from their own time range rather than passing an end time.
type CreateEventRequest struct {
	CalendarID      string
	Summary         string
	Description     string
	StartTime       time.Time
	DurationMinutes int64
	Timezone        string // e.g. "Asia/Kolkata"

	// Guest contact metadata resolved from the owner's profile.
	GuestName  string
	GuestEmail string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
