package middleware

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
})

func TestLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	h := limiter.LimitMiddleware(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
		req.RemoteAddr = fmt.Sprintf("10.0.0.1:%d", 1000+i)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("expected first two requests allowed, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request limited across ports, got %d", codes[2])
	}

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	req.RemoteAddr = "10.0.0.2:1000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected other client allowed, got %d", rec.Code)
	}
}

func TestLimiterForgetsIdleClients(t *testing.T) {
	clock := time.Unix(0, 0)
	limiter := NewIPRateLimiter(1, 1)
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep = clock

	for n := 0; n < 50; n++ {
		limiter.getLimiter(fmt.Sprintf("10.0.1.%d", n))
	}
	if len(limiter.ips) != 50 {
		t.Fatalf("expected 50 tracked clients, got %d", len(limiter.ips))
	}

	clock = clock.Add(DefaultIdleTTL / 2)
	limiter.getLimiter("10.0.1.7")

	clock = clock.Add(DefaultIdleTTL/2 + time.Second)
	limiter.getLimiter("10.0.2.1")
	if len(limiter.ips) != 2 {
		t.Errorf("expected only recent clients kept, got %d", len(limiter.ips))
	}
	if _, ok := limiter.ips["10.0.1.7"]; !ok {
		t.Error("expected recently seen client to survive the sweep")
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/calc/quark", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected allow-origin header")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/calc/quark", nil))
	if rec.Body.String() != "ok" {
		t.Errorf("expected pass-through, got %q", rec.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatal("expected generated request id")
	}
	if rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("expected header %s, got %s", seen, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "upstream-1" {
		t.Errorf("expected upstream id to be kept, got %s", seen)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	h := RequestID(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodPost, "/quantum/quark", nil)
	req.Header.Set(RequestIDHeader, "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{"POST", "/quantum/quark", "418", "id=abc"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in log line %q", want, line)
		}
	}
}
