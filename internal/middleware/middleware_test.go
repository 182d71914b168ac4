package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jumpnjoy-ops/config"
	"jumpnjoy-ops/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any) {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any) {}
func (nopLogger) Warn(ctx context.Context, args ...any) {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Error(ctx context.Context, args ...any) {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) DPanic(ctx context.Context, args ...any) {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any) {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any) {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(nopLogger{}, config.RateLimitConfig{PerMin: 60})

	var got model.Scope
	r := gin.New()
	r.GET("/x", mw.Identity(), func(c *gin.Context) {
		got = ScopeFromContext(c)
		c.Status(http.StatusOK)
	})

	t.Run("full identity headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User-Id", "7")
		req.Header.Set("X-Username", "sam")
		req.Header.Set("X-Display-Name", "Sam P")
		req.Header.Set("X-User-Role", "owner")
		r.ServeHTTP(httptest.NewRecorder(), req)

		want := model.Scope{UserID: "7", Username: "sam", DisplayName: "Sam P", Role: model.RoleOwner}
		if got != want {
			t.Errorf("scope = %+v, want %+v", got, want)
		}
		if got.IsAnonymous() {
			t.Error("scope with user id should not be anonymous")
		}
	})

	t.Run("display name backfills username", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User-Id", "7")
		req.Header.Set("X-Display-Name", "Sam P")
		r.ServeHTTP(httptest.NewRecorder(), req)

		if got.Username != "Sam P" {
			t.Errorf("Username = %q, want display name fallback", got.Username)
		}
	})

	t.Run("no headers means anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)

		if !got.IsAnonymous() {
			t.Errorf("scope = %+v, want anonymous", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// PerMin 10 gives a burst of 1: the second immediate request must trip.
	mw := New(nopLogger{}, config.RateLimitConfig{PerMin: 10})

	r := gin.New()
	r.POST("/x", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(userID string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		if userID != "" {
			req.Header.Set("X-User-Id", userID)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("7"); code != http.StatusOK {
		t.Fatalf("first request: status = %d", code)
	}
	if code := do("7"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", code)
	}

	// A different user has their own bucket.
	if code := do("8"); code != http.StatusOK {
		t.Fatalf("other user: status = %d, want 200", code)
	}
}
