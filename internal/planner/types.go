package planner

import "time"

// ExtractedTask is one task parsed out of the model's JSON array. Times carry
// the offset the model was instructed to emit for the request date.
type ExtractedTask struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Timezone    string    `json:"timezone"`
}

// --- UseCase Inputs ---

type PlanDayInput struct {
	Prompt string
}

// --- UseCase Outputs ---

// TaskOutcome reports the result for one extracted task. A failed task never
// aborts the rest of the batch; the caller gets one outcome per task, in
// extraction order.
type TaskOutcome struct {
	Title   string
	Success bool
	Error   string
}

type PlanDayOutput struct {
	Outcomes []TaskOutcome
}
