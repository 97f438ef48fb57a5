package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fretsound/fretboard-api/internal/theory"
)

type KeysHandler struct{}

func NewKeysHandler() *KeysHandler {
	return &KeysHandler{}
}

// ListKeys returns the 24 built-in major/minor key signatures, or a single
// signature when a ?label= query is present.
func (h *KeysHandler) ListKeys(c *gin.Context) {
	if label := c.Query("label"); label != "" {
		key, ok := theory.KeyByLabel(label)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("unknown key %q", label),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keys": theory.Keys(),
	})
}
