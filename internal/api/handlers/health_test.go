package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretsound/fretboard-api/internal/config"
)

func TestHealthCheckWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{ResolverModel: "gpt-5-mini"}
	handler := NewHealthHandler(nil, cfg)
	router.GET("/health", handler.HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])

	cache, ok := resp["resolution_cache"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "disabled", cache["status"])

	resolver, ok := resp["resolver"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "disabled", resolver["status"])
	assert.Equal(t, "gpt-5-mini", resolver["model"])
}

func TestHealthCheckWithResolverConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{OpenAIAPIKey: "sk-test", ResolverModel: "gpt-5-mini"}
	handler := NewHealthHandler(nil, cfg)
	router.GET("/health", handler.HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	resolver, ok := resp["resolver"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "enabled", resolver["status"])
}

func TestGetMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewMetricsHandler("1.2.3", "gpt-5-mini")
	router.GET("/api/metrics", handler.GetMetrics)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "gpt-5-mini", resp.API["resolver_model"])
	assert.NotEmpty(t, resp.Uptime)
	assert.NotEmpty(t, resp.System.GoVersion)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds_only", duration: 42500 * time.Millisecond, expected: "42.50s"},
		{name: "minutes", duration: 125 * time.Second, expected: "2m5.00s"},
		{name: "hours", duration: 3725 * time.Second, expected: "1h2m5.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatUptime(tt.duration)
			assert.Equal(t, tt.expected, got)
		})
	}
}
