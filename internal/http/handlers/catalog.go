package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/catalog/makes
func (h *Handlers) CatalogMakes(c *gin.Context) {
	makes, err := h.Catalog.Makes(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"makes": makes})
}

// GET /api/catalog/models?make=Toyota
func (h *Handlers) CatalogModels(c *gin.Context) {
	models, err := h.Catalog.Models(c.Request.Context(), c.Query("make"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": models})
}
