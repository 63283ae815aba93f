package usecase

import (
	"fmt"
	"strings"
)

// buildSystemPrompt produces the extraction instruction for one request date.
// The model must answer with nothing but a JSON array of task objects.
func buildSystemPrompt(today, timezone string) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a helpful assistant. Based on the user's schedule for today (%[1]s), extract each time block and return them as an array of task objects with these fields:
- title: A short title
- description: A short description
- startTime: ISO string (e.g., "%[1]sT10:00:00+05:30")
- endTime: ISO string
- timezone: "%[2]s"

Respond ONLY with a JSON array. No extra text or formatting.

Example:
[
  {
    "title": "Work on my project",
    "description": "Focus on backend tasks",
    "startTime": "%[1]sT10:00:00+05:30",
    "endTime": "%[1]sT13:00:00+05:30",
    "timezone": "%[2]s"
  }
]`, today, timezone))
}

// formatUserPrompt normalizes raw user text: trim, ensure a trailing period,
// pin every mentioned time to the request date.
func formatUserPrompt(text, today string) string {
	formatted := strings.TrimSpace(text)
	if !strings.HasSuffix(formatted, ".") {
		formatted += "."
	}
	return fmt.Sprintf("%s Please assume all tasks are for today (%s).", formatted, today)
}

// buildImagePrompt turns a task into a short scene description for the image
// backend. Pure text transformation.
func buildImagePrompt(title, description string) string {
	subject := strings.TrimSpace(title)
	if desc := strings.TrimSpace(description); desc != "" {
		subject = fmt.Sprintf("%s, %s", subject, desc)
	}
	return fmt.Sprintf("A vibrant flat illustration of %s, minimal style, soft colors", subject)
}
