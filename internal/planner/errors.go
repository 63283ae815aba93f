package planner

import "errors"

var (
	ErrEmptyPrompt      = errors.New("prompt is empty")
	ErrExtraction       = errors.New("failed to extract tasks from prompt")
	ErrNoTasksExtracted = errors.New("no tasks extracted from prompt")
	ErrTaskNotFound     = errors.New("task not found")
)
