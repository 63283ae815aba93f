package sdimage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the text-to-image synthesis client.
type Client struct {
	baseURL        string
	timeout        time.Duration
	usePlaceholder bool
	httpClient     *http.Client
}

// New creates a new image generation client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:        cfg.BaseURL,
		timeout:        cfg.Timeout,
		usePlaceholder: cfg.UsePlaceholder,
		httpClient:     &http.Client{},
	}, nil
}

// Generate synthesizes one image for the prompt and returns it base64-encoded.
// The request is cancelled after the configured deadline, surfacing ErrTimeout.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.usePlaceholder {
		return PlaceholderBase64, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqBody := txt2imgRequest{
		Prompt:         prompt,
		NegativePrompt: defaultNegativePrompt,
		Steps:          defaultSteps,
		CFGScale:       defaultCFGScale,
		Width:          defaultWidth,
		Height:         defaultHeight,
		SamplerIndex:   defaultSampler,
		Seed:           -1,
		EnableHR:       false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("sdimage: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sdapi/v1/txt2img", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("sdimage: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return "", fmt.Errorf("sdimage: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result txt2imgResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("sdimage: failed to decode response: %w", err)
	}
	if len(result.Images) == 0 {
		return "", ErrNoImages
	}

	return result.Images[0], nil
}
