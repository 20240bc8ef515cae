package handlers

import (
	"net/http"

	"travelpartner/internal/http/middleware"
	"travelpartner/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/summary
func (h *Handlers) DashboardSummary(c *gin.Context) {
	svc := services.DashboardService{
		Rides:     h.Store,
		RequestID: middleware.GetRequestID(c),
	}
	overview, err := svc.Overview(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
