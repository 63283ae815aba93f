package textgen

import "context"

// Provider is the single capability shared by all text-generation backends.
// Exactly one provider is selected at startup; there is no per-call fallback
// and no automatic retry.
type Provider interface {
	// Complete sends a system+user prompt pair and returns the raw model text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider name (e.g. "openai", "gemini", "ollama").
	Name() string

	// Model returns the model being used.
	Model() string
}
