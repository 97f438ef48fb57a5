package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fretsound/fretboard-api/internal/config"
)

type HealthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	cacheStatus := "disabled"
	if h.db != nil && h.cfg.CacheEnabled {
		cacheStatus = "enabled"
	}

	resolverStatus := "disabled"
	if h.cfg.OpenAIAPIKey != "" || h.cfg.GeminiAPIKey != "" {
		resolverStatus = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"resolution_cache": gin.H{
			"status": cacheStatus,
		},
		"resolver": gin.H{
			"status": resolverStatus,
			"model":  h.cfg.ResolverModel,
		},
	})
}
