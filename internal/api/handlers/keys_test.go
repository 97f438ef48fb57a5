package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretsound/fretboard-api/internal/theory"
)

func setupKeysTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	keysHandler := NewKeysHandler()
	router.GET("/api/v1/keys", keysHandler.ListKeys)

	harmonicsHandler := NewHarmonicsHandler()
	router.GET("/api/v1/harmonics", harmonicsHandler.ListHarmonics)

	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestListKeys(t *testing.T) {
	router := setupKeysTestRouter()

	w, resp := getJSON(t, router, "/api/v1/keys")
	require.Equal(t, http.StatusOK, w.Code)

	keys, ok := resp["keys"].([]any)
	require.True(t, ok)
	assert.Len(t, keys, 24)
}

func TestListKeysByLabel(t *testing.T) {
	router := setupKeysTestRouter()

	w, resp := getJSON(t, router, "/api/v1/keys?label=Eb%20major")
	require.Equal(t, http.StatusOK, w.Code)

	key, ok := resp["key"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Eb major", key["label"])
	assert.Equal(t, float64(3), key["root"])
	assert.Equal(t, true, key["prefer_flats"])
}

func TestListKeysByLabelNotFound(t *testing.T) {
	router := setupKeysTestRouter()

	w, resp := getJSON(t, router, "/api/v1/keys?label=D%20phrygian")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, resp["error"], "D phrygian")
}

func TestListHarmonics(t *testing.T) {
	router := setupKeysTestRouter()

	w, resp := getJSON(t, router, "/api/v1/harmonics")
	require.Equal(t, http.StatusOK, w.Code)

	harmonics, ok := resp["harmonics"].([]any)
	require.True(t, ok)
	assert.Len(t, harmonics, len(theory.HarmonicPoints))

	// Fret 12 is the octave harmonic, partial 2.
	for _, h := range harmonics {
		point, ok := h.(map[string]any)
		require.True(t, ok)
		if point["fret"] == float64(12) {
			assert.Equal(t, float64(2), point["partial"])
			assert.Equal(t, float64(12), point["semitone_shift"])
		}
	}
}
