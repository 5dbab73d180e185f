package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/projecthelena/greeter/internal/clock"
	"github.com/projecthelena/greeter/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingHandler_FixedClock(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	h := NewGreetingHandler(clock.Fixed(at))

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"hello", h.Hello, "Version3 Hi Hello: 2024-01-01T00:00:00"},
		{"info", h.Info, "Version3 DEVOPS INFO: 2024-01-01T00:00:00"},
		{"about", h.About, "Version3 about: 2024-01-01T00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestGreetingHandler_Fraction(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 120_000_000, time.Local)
	h := NewGreetingHandler(clock.Fixed(at))

	w := httptest.NewRecorder()
	h.About(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, "Version3 about: 2024-03-09T14:05:07.12", w.Body.String())
	got := parseStamp(t, strings.TrimPrefix(w.Body.String(), AboutLabel))
	assert.True(t, got.Equal(at), "expected %v, got %v", at, got)
}

func TestGreetingHandler_NilClockUsesWallClock(t *testing.T) {
	h := NewGreetingHandler(nil)

	w := httptest.NewRecorder()
	before := time.Now()
	h.Hello(w, httptest.NewRequest(http.MethodGet, "/", nil))

	got := parseStamp(t, strings.TrimPrefix(w.Body.String(), HelloLabel))
	assert.WithinDuration(t, before, got, 5*time.Second)
}

// TestGreetingRoutes_Integration exercises the three endpoints through the
// full middleware chain with the real clock.
func TestGreetingRoutes_Integration(t *testing.T) {
	ts := newTestServer(t, config.Default(), clock.Real{})

	tests := []struct {
		path  string
		label string
	}{
		{"/", HelloLabel},
		{"/info", InfoLabel},
		{"/about", AboutLabel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			issued := time.Now()
			resp, body := get(t, ts, tt.path)

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
			assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
			require.True(t, strings.HasPrefix(body, tt.label), "body %q should start with %q", body, tt.label)

			stamp := parseStamp(t, strings.TrimPrefix(body, tt.label))
			assert.WithinDuration(t, issued, stamp, 5*time.Second)

			_, next := get(t, ts, tt.path)
			later := parseStamp(t, strings.TrimPrefix(next, tt.label))
			assert.False(t, later.Before(stamp), "second timestamp %v before first %v", later, stamp)
		})
	}
}

func TestGreetingRoutes_Scripted(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	clk := clock.Func(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		at := now
		now = now.Add(time.Second)
		return at
	})
	ts := newTestServer(t, config.Default(), clk)

	_, body := get(t, ts, "/")
	assert.Equal(t, "Version3 Hi Hello: 2024-01-01T00:00:00", body)

	_, body = get(t, ts, "/info")
	assert.Equal(t, "Version3 DEVOPS INFO: 2024-01-01T00:00:01", body)

	_, body = get(t, ts, "/about")
	assert.Equal(t, "Version3 about: 2024-01-01T00:00:02", body)
}

func TestUndefinedRoutes(t *testing.T) {
	ts := newTestServer(t, config.Default(), clock.Real{})

	resp, body := get(t, ts, "/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotContains(t, body, "Version3")

	resp, err := ts.Client().Post(ts.URL+"/info", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
