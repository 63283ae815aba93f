package textgen

import (
	"context"

	"day-planner/pkg/gemini"
	"day-planner/pkg/ollama"
	"day-planner/pkg/openai"
)

// openAIChatter is the slice of pkg/openai used here; narrowed for tests.
type openAIChatter interface {
	CreateChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error)
	Model() string
}

// OpenAIAdapter adapts pkg/openai to the Provider interface.
type OpenAIAdapter struct {
	client openAIChatter
}

// NewOpenAIAdapter creates a new OpenAI adapter.
func NewOpenAIAdapter(client *openai.Client) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// Complete implements Provider.
func (a *OpenAIAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Provider: a.Name(), Err: ErrEmptyCompletion}
	}
	return text, nil
}

func (a *OpenAIAdapter) Name() string  { return "openai" }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

// geminiGenerator is the slice of pkg/gemini used here; narrowed for tests.
type geminiGenerator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client geminiGenerator
}

// NewGeminiAdapter creates a new Gemini adapter.
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Complete implements Provider.
func (a *GeminiAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: systemPrompt}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: userPrompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Provider: a.Name(), Err: ErrEmptyCompletion}
	}
	return text, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// ollamaChatter is the slice of pkg/ollama used here; narrowed for tests.
type ollamaChatter interface {
	Chat(ctx context.Context, messages []ollama.Message) (*ollama.ChatResponse, error)
	Model() string
}

// OllamaAdapter adapts pkg/ollama to the Provider interface.
type OllamaAdapter struct {
	client ollamaChatter
}

// NewOllamaAdapter creates a new Ollama adapter.
func NewOllamaAdapter(client *ollama.Client) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// Complete implements Provider.
func (a *OllamaAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := a.client.Chat(ctx, []ollama.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}
	if resp.Message.Content == "" {
		return "", &ProviderError{Provider: a.Name(), Err: ErrEmptyCompletion}
	}
	return resp.Message.Content, nil
}

func (a *OllamaAdapter) Name() string  { return "ollama" }
func (a *OllamaAdapter) Model() string { return a.client.Model() }
