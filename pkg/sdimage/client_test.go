package sdimage_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"day-planner/pkg/sdimage"
)

func TestGenerate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sdapi/v1/txt2img" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		prompt, _ := req["prompt"].(string)
		switch {
		case strings.Contains(prompt, "cause_500"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "cuda out of memory"}`))
		case strings.Contains(prompt, "cause_slow"):
			time.Sleep(300 * time.Millisecond)
			w.Write([]byte(`{"images": ["c2xvdw=="]}`))
		case strings.Contains(prompt, "cause_empty"):
			w.Write([]byte(`{"images": []}`))
		default:
			// Body must carry the fixed parameters
			if req["width"].(float64) != 512 || req["height"].(float64) != 512 ||
				req["steps"].(float64) != 20 || req["cfg_scale"].(float64) != 7 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if req["negative_prompt"].(string) == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"images": ["aW1hZ2Ux", "aW1hZ2Uy"]}`))
		}
	}))
	defer ts.Close()

	client, err := sdimage.New(sdimage.Config{BaseURL: ts.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("returns first image", func(t *testing.T) {
		img, err := client.Generate(context.Background(), "a calm morning desk scene")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img != "aW1hZ2Ux" {
			t.Errorf("expected first image of payload, got %q", img)
		}
	})

	t.Run("non-2xx carries response body", func(t *testing.T) {
		_, err := client.Generate(context.Background(), "cause_500")
		var apiErr *sdimage.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("unexpected status: %d", apiErr.StatusCode)
		}
		if !strings.Contains(apiErr.Body, "cuda out of memory") {
			t.Errorf("expected error body preserved, got %q", apiErr.Body)
		}
	})

	t.Run("empty image list", func(t *testing.T) {
		_, err := client.Generate(context.Background(), "cause_empty")
		if !errors.Is(err, sdimage.ErrNoImages) {
			t.Errorf("expected ErrNoImages, got %v", err)
		}
	})

	t.Run("timeout cancels in-flight request", func(t *testing.T) {
		slow, err := sdimage.New(sdimage.Config{BaseURL: ts.URL, Timeout: 50 * time.Millisecond})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = slow.Generate(context.Background(), "cause_slow")
		if !errors.Is(err, sdimage.ErrTimeout) {
			t.Errorf("expected ErrTimeout, got %v", err)
		}
	})
}

func TestGeneratePlaceholder(t *testing.T) {
	// No server: placeholder mode must not touch the network.
	client, err := sdimage.New(sdimage.Config{BaseURL: "http://127.0.0.1:1", UsePlaceholder: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := client.Generate(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img != sdimage.PlaceholderBase64 {
		t.Errorf("expected placeholder image")
	}
}
