package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"day-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newRewriteClient(ts *httptest.Server) *http.Client {
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	return tsClient
}

func TestCalendarClientInit(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app config with token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("from file", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&captured)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "event-123",
				"htmlLink": "https://calendar.google.com/event-uri",
				"status": "confirmed"
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client, err := gcalendar.NewClientFromHTTP(context.Background(), newRewriteClient(ts))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID:      "primary",
		Summary:         "Write report",
		Description:     "Morning focus block",
		StartTime:       start,
		DurationMinutes: 60,
		Timezone:        "Asia/Kolkata",
		GuestName:       "Ada Lovelace",
		GuestEmail:      "ada@example.com",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" {
		t.Errorf("unexpected event id: %s", event.ID)
	}
	if !event.EndTime.Equal(start.Add(time.Hour)) {
		t.Errorf("end time must be start + duration, got %v", event.EndTime)
	}

	endRaw := captured["end"].(map[string]any)["dateTime"].(string)
	if !strings.HasPrefix(endRaw, "2025-06-01T11:00:00") {
		t.Errorf("unexpected wire end time: %s", endRaw)
	}
	attendees := captured["attendees"].([]any)
	if len(attendees) != 1 {
		t.Fatalf("expected 1 attendee, got %d", len(attendees))
	}
	if attendees[0].(map[string]any)["email"] != "ada@example.com" {
		t.Errorf("unexpected attendee: %v", attendees[0])
	}
}

func TestCreateEventError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, _ := gcalendar.NewClientFromHTTP(context.Background(), newRewriteClient(ts))
	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "primary",
		StartTime:  time.Now(),
	})
	if err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestDeleteEvent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client, err := gcalendar.NewClientFromHTTP(context.Background(), newRewriteClient(ts))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.DeleteEvent(context.Background(), "primary", "event-123"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	if err := client.DeleteEvent(context.Background(), "primary", "missing-event"); err == nil {
		t.Fatalf("expected delete error for unknown event")
	}
}
