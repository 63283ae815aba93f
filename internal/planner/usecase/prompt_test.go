package usecase

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := buildSystemPrompt("2025-06-01", "Asia/Kolkata")

	for _, want := range []string{
		"today (2025-06-01)",
		`"2025-06-01T10:00:00+05:30"`,
		`timezone: "Asia/Kolkata"`,
		"Respond ONLY with a JSON array",
		`"title": "Work on my project"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
	if strings.HasPrefix(prompt, "\n") || strings.HasSuffix(prompt, "\n") {
		t.Errorf("system prompt should be trimmed")
	}
}

func TestFormatUserPrompt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "adds trailing period",
			in:   "gym at 6pm",
			want: "gym at 6pm. Please assume all tasks are for today (2025-06-01).",
		},
		{
			name: "keeps existing period",
			in:   "gym at 6pm.",
			want: "gym at 6pm. Please assume all tasks are for today (2025-06-01).",
		},
		{
			name: "trims whitespace",
			in:   "  gym at 6pm  ",
			want: "gym at 6pm. Please assume all tasks are for today (2025-06-01).",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatUserPrompt(tc.in, "2025-06-01"); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildImagePrompt(t *testing.T) {
	got := buildImagePrompt("Gym", "Leg day")
	if !strings.Contains(got, "Gym, Leg day") {
		t.Errorf("unexpected image prompt: %q", got)
	}

	got = buildImagePrompt("Gym", "")
	if strings.Contains(got, ",  ") || !strings.Contains(got, "Gym") {
		t.Errorf("unexpected image prompt without description: %q", got)
	}
}
