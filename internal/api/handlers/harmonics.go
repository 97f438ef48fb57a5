package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fretsound/fretboard-api/internal/theory"
)

type HarmonicsHandler struct{}

func NewHarmonicsHandler() *HarmonicsHandler {
	return &HarmonicsHandler{}
}

// ListHarmonics returns the fixed natural-harmonic position table
func (h *HarmonicsHandler) ListHarmonics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"harmonics": theory.HarmonicPoints,
	})
}
