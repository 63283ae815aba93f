package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"day-planner/internal/planner"
)

// extractJSONBlock locates the first well-formed JSON array inside raw model
// output. Models wrap the array in code fences or prose despite instructions,
// and the prose itself can contain bracketed phrases, so every balanced
// candidate is checked and the scan moves on past ones that are not JSON.
func extractJSONBlock(raw string) (string, error) {
	for start := strings.IndexByte(raw, '['); start >= 0; {
		if block, ok := balancedBlock(raw[start:]); ok && json.Valid([]byte(block)) {
			return block, nil
		}
		next := strings.IndexByte(raw[start+1:], '[')
		if next < 0 {
			break
		}
		start += 1 + next
	}
	return "", fmt.Errorf("no JSON array found in response")
}

// balancedBlock walks s, which must start with '[', to the matching ']'
// outside strings. Reports false when the array never closes.
func balancedBlock(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// extractTasks runs one completion and parses the result. No retry; provider
// failures surface to the caller wrapped in ErrExtraction.
func (uc *implUseCase) extractTasks(ctx context.Context, userText string) ([]planner.ExtractedTask, error) {
	today := uc.now().Format("2006-01-02")
	systemPrompt := buildSystemPrompt(today, uc.cfg.Timezone)
	userPrompt := formatUserPrompt(userText, today)

	raw, err := uc.provider.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.extractTasks Complete (%s): %v", uc.provider.Name(), err)
		return nil, fmt.Errorf("%w: %w", planner.ErrExtraction, err)
	}

	block, err := extractJSONBlock(raw)
	if err != nil {
		uc.l.Warnf(ctx, "uc.extractTasks no JSON block in %q", raw)
		return nil, fmt.Errorf("%w: %v", planner.ErrExtraction, err)
	}

	var tasks []planner.ExtractedTask
	if err := json.Unmarshal([]byte(block), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrExtraction, err)
	}
	if len(tasks) == 0 {
		return nil, planner.ErrNoTasksExtracted
	}
	return tasks, nil
}
