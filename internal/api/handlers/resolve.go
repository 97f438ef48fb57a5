package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fretsound/fretboard-api/internal/logger"
	"github.com/fretsound/fretboard-api/internal/metrics"
	"github.com/fretsound/fretboard-api/internal/services"
	"github.com/fretsound/fretboard-api/internal/theory"
)

// resolver is the resolution surface this handler needs.
type resolver interface {
	ResolveChord(ctx context.Context, input string) (*theory.Chord, string, error)
	ResolveScale(ctx context.Context, input string) (*theory.KeySignature, string, error)
}

type ResolveHandler struct {
	resolver resolver
	cw       *metrics.Client
	model    string
}

func NewResolveHandler(svc *services.ResolverService, cw *metrics.Client, model string) *ResolveHandler {
	return &ResolveHandler{
		resolver: svc,
		cw:       cw,
		model:    model,
	}
}

type ResolveRequest struct {
	Input string `json:"input" binding:"required"`
}

// ResolveChord resolves a chord symbol into pitch classes and degrees.
func (h *ResolveHandler) ResolveChord(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	chord, source, err := h.resolver.ResolveChord(c.Request.Context(), req.Input)
	duration := time.Since(start)

	h.record("chord", source, duration, err == nil)

	if err != nil {
		logger.Warn("Chord resolution failed", logger.Fields{
			"request_id": c.GetString("request_id"),
			"input":      req.Input,
		})
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	logger.LogResolutionRequest(c.Request.Context(), "chord", source, h.model, duration, logger.Fields{
		"request_id": c.GetString("request_id"),
	})

	c.JSON(http.StatusOK, gin.H{
		"chord":  chord,
		"source": source,
		"cached": source == services.SourceCache,
	})
}

// ResolveScale resolves a scale or key name into a key signature.
func (h *ResolveHandler) ResolveScale(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	scale, source, err := h.resolver.ResolveScale(c.Request.Context(), req.Input)
	duration := time.Since(start)

	h.record("scale", source, duration, err == nil)

	if err != nil {
		logger.Warn("Scale resolution failed", logger.Fields{
			"request_id": c.GetString("request_id"),
			"input":      req.Input,
		})
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	logger.LogResolutionRequest(c.Request.Context(), "scale", source, h.model, duration, logger.Fields{
		"request_id": c.GetString("request_id"),
	})

	c.JSON(http.StatusOK, gin.H{
		"scale":  scale,
		"source": source,
		"cached": source == services.SourceCache,
	})
}

func (h *ResolveHandler) record(kind, source string, duration time.Duration, success bool) {
	if h.cw == nil {
		return
	}
	h.cw.RecordResolution(kind, source, duration, success)
	if source == services.SourceCache || source == services.SourceLLM {
		h.cw.RecordCacheLookup(kind, source == services.SourceCache)
	}
}
