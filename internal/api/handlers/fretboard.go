package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fretsound/fretboard-api/internal/theory"
)

const (
	viewContinuous = "continuous"
	viewHarmonic   = "harmonic"
)

type FretboardHandler struct{}

func NewFretboardHandler() *FretboardHandler {
	return &FretboardHandler{}
}

type MarkersRequest struct {
	Tuning    TuningRequest `json:"tuning"`
	Key       string        `json:"key"`   // e.g. "Eb major", empty for none
	Chord     string        `json:"chord"` // e.g. "Cmaj7", empty for none
	View      string        `json:"view"`  // "continuous" (default) or "harmonic"
	FretCount int           `json:"fret_count"`
}

// MarkerView is a marker plus its render position and degree label. Position
// and degree are presentation concerns, so they live here rather than on the
// marker itself.
type MarkerView struct {
	theory.Marker
	Position float64 `json:"position"`
	Degree   string  `json:"degree,omitempty"`
}

type MarkersResponse struct {
	Tuning  theory.Tuning `json:"tuning"`
	Markers []MarkerView  `json:"markers"`
	Errors  []string      `json:"errors,omitempty"`
}

// BuildMarkers computes the full marker list for one fretboard render. The
// key must be one of the built-in signatures and the chord must parse with
// the local grammar; symbols beyond the grammar go through the resolve
// endpoints first.
func (h *FretboardHandler) BuildMarkers(c *gin.Context) {
	var req MarkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Tuning.Preset == "" {
		req.Tuning.Preset = theory.PresetStandard
	}
	tuning, errs := theory.BuildTuning(req.Tuning.Preset, req.Tuning.StringCount, req.Tuning.Strings)

	var key *theory.KeySignature
	if req.Key != "" {
		k, ok := theory.KeyByLabel(req.Key)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("unknown key %q, use the scale resolve endpoint for non built-in scales", req.Key),
			})
			return
		}
		key = k
	}

	var chord *theory.Chord
	if req.Chord != "" {
		parsed, err := theory.ParseChord(req.Chord)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("unrecognized chord %q, use the chord resolve endpoint first", req.Chord),
			})
			return
		}
		chord = parsed
	}

	mode := theory.ContinuousMode(req.FretCount)
	if req.View == viewHarmonic {
		mode = theory.HarmonicMode()
	}

	markers := theory.BuildMarkers(tuning, key, chord, mode)

	views := make([]MarkerView, 0, len(markers))
	for _, m := range markers {
		position := theory.FretPosition(m.Fret)
		if mode.View == theory.ViewContinuous {
			position = theory.MarkerPosition(int(m.Fret))
		}
		views = append(views, MarkerView{
			Marker:   m,
			Position: position,
			Degree:   theory.DegreeLabelFor(m.PitchClass, key, chord),
		})
	}

	c.JSON(http.StatusOK, MarkersResponse{
		Tuning:  tuning,
		Markers: views,
		Errors:  errs,
	})
}
