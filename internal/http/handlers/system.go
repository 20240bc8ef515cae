package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
