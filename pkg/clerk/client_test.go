package clerk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"day-planner/pkg/clerk"
)

func newTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk_test_key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.URL.Path {
		case "/v1/users/user_1":
			hits.Add(1)
			w.Write([]byte(`{
				"id": "user_1",
				"first_name": "Ada",
				"last_name": "Lovelace",
				"primary_email_address_id": "em_1",
				"email_addresses": [
					{"id": "em_2", "email_address": "old@example.com"},
					{"id": "em_1", "email_address": "ada@example.com"}
				]
			}`))
		case "/v1/users/user_noemail":
			w.Write([]byte(`{
				"id": "user_noemail",
				"first_name": "No",
				"last_name": "Mail",
				"primary_email_address_id": "em_gone",
				"email_addresses": []
			}`))
		case "/v1/tokens/verify":
			w.Write([]byte(`{"id": "sess_1", "user_id": "user_1", "status": "active"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestGetProfile(t *testing.T) {
	var hits atomic.Int64
	ts := newTestServer(t, &hits)
	defer ts.Close()

	client, err := clerk.New(clerk.Config{APIURL: ts.URL, SecretKey: "sk_test_key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("resolves primary email and name", func(t *testing.T) {
		profile, err := client.GetProfile(context.Background(), "user_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.FullName != "Ada Lovelace" {
			t.Errorf("unexpected full name: %q", profile.FullName)
		}
		if profile.PrimaryEmail != "ada@example.com" {
			t.Errorf("unexpected primary email: %q", profile.PrimaryEmail)
		}
	})

	t.Run("caches profiles", func(t *testing.T) {
		before := hits.Load()
		if _, err := client.GetProfile(context.Background(), "user_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hits.Load() != before {
			t.Errorf("expected cached profile, got extra API hit")
		}
	})

	t.Run("missing primary email", func(t *testing.T) {
		_, err := client.GetProfile(context.Background(), "user_noemail")
		if !errors.Is(err, clerk.ErrNoPrimaryEmail) {
			t.Errorf("expected ErrNoPrimaryEmail, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := client.GetProfile(context.Background(), "user_missing")
		if !errors.Is(err, clerk.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestVerifyToken(t *testing.T) {
	var hits atomic.Int64
	ts := newTestServer(t, &hits)
	defer ts.Close()

	client, err := clerk.New(clerk.Config{APIURL: ts.URL, SecretKey: "sk_test_key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := client.VerifyToken(context.Background(), "sess-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != "user_1" {
		t.Errorf("unexpected user id: %q", session.UserID)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := clerk.New(clerk.Config{}); err == nil {
		t.Errorf("expected error for missing secret key")
	}
}
