package ollama

const (
	// DefaultBaseURL is the default local Ollama endpoint.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default model to use.
	DefaultModel = "llama3.2"
)
