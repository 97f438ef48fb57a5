package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fretsound/fretboard-api/internal/theory"
)

type TuningHandler struct{}

func NewTuningHandler() *TuningHandler {
	return &TuningHandler{}
}

type TuningRequest struct {
	Preset      string   `json:"preset"`
	StringCount int      `json:"string_count"`
	Strings     []string `json:"strings"` // custom preset only, low to high
}

type TuningResponse struct {
	Tuning theory.Tuning `json:"tuning"`
	Errors []string      `json:"errors,omitempty"`
}

// BuildTuning resolves a preset (or custom note list) into per-string base
// pitches. Invalid custom strings are reported per string, not as a request
// failure: the client renders the strings that parsed.
func (h *TuningHandler) BuildTuning(c *gin.Context) {
	var req TuningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Preset == "" {
		req.Preset = theory.PresetStandard
	}

	tuning, errs := theory.BuildTuning(req.Preset, req.StringCount, req.Strings)
	c.JSON(http.StatusOK, TuningResponse{
		Tuning: tuning,
		Errors: errs,
	})
}
