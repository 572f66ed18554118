package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		if ok, _ := rl.Allow("ip:10.0.0.1"); !ok {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if ok, remaining := rl.Allow("ip:10.0.0.1"); ok || remaining != 0 {
		t.Errorf("Request 6 should be rate limited, got allowed=%v remaining=%d", ok, remaining)
	}
}

func TestRateLimiter_DifferentClients(t *testing.T) {
	rl := NewRateLimiter(10, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		rl.Allow("ip:10.0.0.1")
	}
	if ok, _ := rl.Allow("ip:10.0.0.1"); ok {
		t.Error("First client should be rate limited")
	}
	if ok, _ := rl.Allow("ip:10.0.0.2"); !ok {
		t.Error("Second client should still be allowed")
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(10, 3)
	rl.Stop()
	rl.Stop()
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 2)
	defer rl.Stop()

	handler := RateLimitMiddleware(rl)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		codes = append(codes, rec.Code)

		if rec.Header().Get("X-RateLimit-Limit") != "60" {
			t.Errorf("Expected X-RateLimit-Limit 60, got %q", rec.Header().Get("X-RateLimit-Limit"))
		}
		if i == 2 && rec.Header().Get("Retry-After") != "1" {
			t.Errorf("Expected Retry-After 1, got %q", rec.Header().Get("Retry-After"))
		}
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected [200 200 429], got %v", codes)
	}
}

func TestClientKey_PrefersSubject(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	c := e.NewContext(req, httptest.NewRecorder())

	if got := clientKey(c); got != "ip:192.0.2.7" {
		t.Errorf("Expected ip key, got %q", got)
	}

	ctx := context.WithValue(req.Context(), SubjectKey, "auth0|owner")
	c.SetRequest(req.WithContext(ctx))
	if got := clientKey(c); got != "sub:auth0|owner" {
		t.Errorf("Expected subject key, got %q", got)
	}
}
