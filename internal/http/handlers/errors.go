package handlers

import (
	"context"
	"errors"
	"net/http"

	"travelpartner/internal/domain"
	"travelpartner/internal/http/middleware"
	"travelpartner/internal/seatconfig"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"message":    message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps core errors onto HTTP responses. Validation never
// reaches the store; upstream failures surface as recoverable 502s; a
// superseded save is reported to its caller but is not a failure of the
// session.
func RespondDomainError(c *gin.Context, err error) {
	var violation *seatconfig.Violation
	switch {
	case errors.As(err, &violation):
		respondError(c, http.StatusBadRequest, violation.Code, violation.Error(), violation)
	case errors.Is(err, seatconfig.ErrSuperseded):
		respondError(c, http.StatusConflict, "superseded", err.Error(), nil)
	case errors.Is(err, seatconfig.ErrSaveInFlight):
		respondError(c, http.StatusConflict, "save_in_flight", err.Error(), nil)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsUpstream(err):
		var upstream domain.UpstreamError
		errors.As(err, &upstream)
		respondError(c, http.StatusBadGateway, "upstream_error", err.Error(), gin.H{
			"upstreamStatus":  upstream.Status,
			"upstreamMessage": upstream.Message,
		})
	case errors.Is(err, context.Canceled):
		// Caller went away; nobody is reading the response.
		c.Abort()
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
