package handlers

import (
	"net/http"

	"travelpartner/internal/catalog"
	intconfig "travelpartner/internal/config"
	"travelpartner/internal/http/middleware"
	"travelpartner/internal/seatconfig"
	"travelpartner/internal/store"

	"github.com/gin-gonic/gin"
)

// Handlers carries every dependency the HTTP layer needs. No handler reads
// ambient globals; identity comes from the auth middleware and everything
// else is injected here.
type Handlers struct {
	Env      intconfig.Env
	Store    *store.Client
	Sessions *seatconfig.Manager
	Catalog  *catalog.Client
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
