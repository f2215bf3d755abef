package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsantiago76/BetterMe-sub000/internal/config"
)

func TestRateLimitDisabled(t *testing.T) {
	cfg := &config.Config{RateLimitRPS: 0}
	handler := RateLimitMiddleware(cfg, corsTestHandler())

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/v1/shakes", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i, w.Code)
		}
	}
}

func TestRateLimitExceeded(t *testing.T) {
	cfg := &config.Config{RateLimitRPS: 1, RateLimitBurst: 2}
	handler := RateLimitMiddleware(cfg, corsTestHandler())

	send := func(addr string) int {
		req := httptest.NewRequest("GET", "/v1/shakes", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	// Burst of 2 passes, the third is rejected.
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("first request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("second request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("third request: expected 429, got %d", code)
	}

	// A different IP has its own bucket.
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other ip: expected 200, got %d", code)
	}
}

func TestRateLimitRetryAfterHeader(t *testing.T) {
	cfg := &config.Config{RateLimitRPS: 1, RateLimitBurst: 1}
	handler := RateLimitMiddleware(cfg, corsTestHandler())

	req := httptest.NewRequest("GET", "/v1/shakes", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got == "" {
		t.Error("expected Retry-After header on 429")
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.168.1.10:5555"
	if got := extractIP(req); got != "192.168.1.10" {
		t.Errorf("extractIP = %q, want 192.168.1.10", got)
	}

	// X-Forwarded-For wins, first hop only.
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 70.41.3.18")
	if got := extractIP(req); got != "203.0.113.7" {
		t.Errorf("extractIP = %q, want 203.0.113.7", got)
	}
}
