package textgen

import (
	"fmt"

	"day-planner/config"
	"day-planner/pkg/gemini"
	"day-planner/pkg/ollama"
	"day-planner/pkg/openai"
)

// New builds the one Provider selected by configuration. The choice is fixed
// for the process lifetime; callers never switch backends per request.
func New(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	switch cfg.Provider {
	case "openai":
		client, err := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("provider gemini: API key is required")
		}
		client := gemini.NewClient(cfg.Gemini.APIKey)
		client.SetModel(cfg.Gemini.Model)
		return NewGeminiAdapter(client), nil

	case "ollama":
		client, err := ollama.New(ollama.Config{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Ollama.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
