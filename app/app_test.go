package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/padelcoach/coach-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP:      config.HTTPConfig{Addr: ":0", AllowedOrigins: []string{"http://localhost:5173"}},
		JWT:       config.JWTConfig{Secret: "test-secret-with-enough-bytes", DefaultTTL: time.Hour},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 5, Burst: 10},
	}
}

func TestNewApp_MountsModules(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApp(context.Background(), testConfig(), logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Bus.Close() })

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health without database", http.MethodGet, "/healthz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"me requires token", http.MethodGet, "/api/auth/me", http.StatusUnauthorized},
		{"students require token", http.MethodGet, "/api/students", http.StatusUnauthorized},
		{"exercises require token", http.MethodGet, "/api/exercises", http.StatusUnauthorized},
		{"plans require token", http.MethodGet, "/api/plans", http.StatusUnauthorized},
		{"sessions require token", http.MethodGet, "/api/sessions", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			app.Handler().ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestRouter_AnswersPreflight(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApp(context.Background(), testConfig(), logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Bus.Close() })

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}
