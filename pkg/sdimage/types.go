package sdimage

import "time"

// Config holds image generation client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration // <=0 uses DefaultTimeout

	// UsePlaceholder substitutes the compiled-in placeholder image instead of
	// calling the backend. Deployment-mode switch, never an error fallback.
	UsePlaceholder bool
}

// txt2imgRequest is the /sdapi/v1/txt2img request body.
type txt2imgRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Steps          int    `json:"steps"`
	CFGScale       int    `json:"cfg_scale"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	SamplerIndex   string `json:"sampler_index"`
	Seed           int    `json:"seed"`
	EnableHR       bool   `json:"enable_hr"`
}

// txt2imgResponse is the /sdapi/v1/txt2img response body.
type txt2imgResponse struct {
	Images []string `json:"images"`
}
