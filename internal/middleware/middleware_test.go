package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Forgeworks_Go/internal/testing/leaktest"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	h := rl.Middleware(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ruleset", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, RetryAfterSeconds, rec.Header().Get(HeaderRetryAfter))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ruleset", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(context.Background(), RateLimitConfig{})
	h := rl.Middleware(okHandler())

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RemoveIdle(t *testing.T) {
	rl := NewRateLimiter(context.Background(), RateLimitConfig{})
	rl.config = RateLimitConfig{RequestsPerSecond: 100, BurstSize: 1}

	rl.getLimiter("10.0.0.1").Allow()
	rl.removeIdle(time.Now().Add(time.Hour))
	assert.Empty(t, rl.clients)
}

func TestRateLimiter_CleanupStopsWithContext(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		NewRateLimiter(ctx, RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})
		cancel()
	})
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		expected   string
	}{
		{"direct", "192.168.1.5:4000", "", nil, "192.168.1.5"},
		{"untrusted proxy header ignored", "192.168.1.5:4000", "1.2.3.4", nil, "192.168.1.5"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:4000", "9.9.9.9, 1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"trusted proxy without header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "pipe", "", nil, "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, ClientIP(req, tt.trusted))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	c := NewCORS(CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}})
	h := c.Middleware(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ruleset", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/ruleset", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
