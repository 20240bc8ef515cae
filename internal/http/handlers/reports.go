package handlers

import (
	"net/http"

	"travelpartner/internal/http/middleware"
	"travelpartner/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/revenue
func (h *Handlers) RevenueReport(c *gin.Context) {
	svc := services.ReportService{
		Rides:     h.Store,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateRevenueReport(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
