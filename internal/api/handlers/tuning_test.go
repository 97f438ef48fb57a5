package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTuningTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := NewTuningHandler()
	router.POST("/api/v1/tuning", handler.BuildTuning)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTuningHandler(t *testing.T) {
	router := setupTuningTestRouter()

	tests := []struct {
		name           string
		request        TuningRequest
		expectedStatus int
		validateResp   func(t *testing.T, resp TuningResponse)
	}{
		{
			name:           "empty_request_defaults_to_standard",
			request:        TuningRequest{},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp TuningResponse) {
				t.Helper()
				assert.Equal(t, "standard", resp.Tuning.Preset)
				require.Len(t, resp.Tuning.Strings, 6)
				assert.Equal(t, "E2", resp.Tuning.Strings[0].Label)
				assert.Equal(t, "E4", resp.Tuning.Strings[5].Label)
				assert.Empty(t, resp.Errors)
			},
		},
		{
			name:           "fourths_preset",
			request:        TuningRequest{Preset: "fourths"},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp TuningResponse) {
				t.Helper()
				require.Len(t, resp.Tuning.Strings, 6)
				assert.Equal(t, "C4", resp.Tuning.Strings[4].Label)
				assert.Equal(t, "F4", resp.Tuning.Strings[5].Label)
			},
		},
		{
			name:           "four_strings_uses_bass_base",
			request:        TuningRequest{Preset: "standard", StringCount: 4},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp TuningResponse) {
				t.Helper()
				require.Len(t, resp.Tuning.Strings, 4)
				assert.Equal(t, "E1", resp.Tuning.Strings[0].Label)
				assert.Equal(t, "G2", resp.Tuning.Strings[3].Label)
			},
		},
		{
			name:           "seven_strings_extends_down",
			request:        TuningRequest{Preset: "standard", StringCount: 7},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp TuningResponse) {
				t.Helper()
				require.Len(t, resp.Tuning.Strings, 7)
				assert.Equal(t, "B1", resp.Tuning.Strings[0].Label)
				assert.Equal(t, "E2", resp.Tuning.Strings[1].Label)
			},
		},
		{
			name: "custom_tuning_with_default_octave",
			request: TuningRequest{
				Preset:  "custom",
				Strings: []string{"D2", "A2", "D3", "G3", "A3", "D4"},
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp TuningResponse) {
				t.Helper()
				require.Len(t, resp.Tuning.Strings, 6)
				assert.Equal(t, "D2", resp.Tuning.Strings[0].Label)
				assert.Equal(t, 38, resp.Tuning.Strings[0].AbsolutePitch)
				assert.Empty(t, resp.Errors)
			},
		},
		{
			name: "custom_tuning_reports_bad_strings",
			request: TuningRequest{
				Preset:  "custom",
				Strings: []string{"E2", "X9", "D3"},
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp TuningResponse) {
				t.Helper()
				require.Len(t, resp.Errors, 1)
				assert.Contains(t, resp.Errors[0], "String 2")
				// The bad string is skipped, the rest survive.
				require.Len(t, resp.Tuning.Strings, 2)
				assert.Equal(t, "E2", resp.Tuning.Strings[0].Label)
				assert.Equal(t, "D3", resp.Tuning.Strings[1].Label)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/v1/tuning", tt.request)
			require.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())

			var resp TuningResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			tt.validateResp(t, resp)
		})
	}
}

func TestTuningHandlerRejectsMalformedJSON(t *testing.T) {
	router := setupTuningTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tuning", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
