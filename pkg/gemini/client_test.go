package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"day-planner/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{ "content": { "role": "model", "parts": [ { "text": "[{\"title\":\"Write report\"}]" } ] } }
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "extract tasks"}}},
			Contents:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "plan my day"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() == "" {
			t.Errorf("expected candidate text")
		}
	})

	t.Run("api error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatalf("expected API error")
		}
	})

	t.Run("empty response text", func(t *testing.T) {
		var resp gemini.GenerateResponse
		if resp.Text() != "" {
			t.Errorf("expected empty text for no candidates")
		}
	})
}
