package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
	"day-planner/internal/model"
	"day-planner/pkg/clerk"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockVerifier struct {
	session clerk.Session
	err     error

	gotToken string
}

func (m *mockVerifier) VerifyToken(ctx context.Context, token string) (clerk.Session, error) {
	m.gotToken = token
	return m.session, m.err
}

func newAuthRouter(verifier *mockVerifier) (*gin.Engine, *model.Scope) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, verifier)

	var seen model.Scope
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		seen = middleware.GetScope(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestAuth(t *testing.T) {
	verifier := &mockVerifier{session: clerk.Session{ID: "sess_1", UserID: "user_1", Status: "active"}}
	r, seen := newAuthRouter(verifier)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if verifier.gotToken != "session-token" {
		t.Errorf("unexpected token forwarded: %q", verifier.gotToken)
	}
	if seen.UserID != "user_1" {
		t.Errorf("scope not set from session: %+v", seen)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(&mockVerifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	r, _ := newAuthRouter(&mockVerifier{err: errors.New("token expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
