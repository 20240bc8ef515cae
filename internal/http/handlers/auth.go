package handlers

import (
	"errors"
	"net/http"

	"travelpartner/internal/domain"
	"travelpartner/internal/http/middleware"
	"travelpartner/internal/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login forwards dashboard credentials to the external store and, on
// success, mints the session token the rest of the API requires. Passwords
// are never verified or stored here.
//
// POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	partner, err := h.Store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// The store answers bad credentials with its own 4xx; that is a
		// rejected login, not an upstream outage.
		var upstream domain.UpstreamError
		if errors.As(err, &upstream) && upstream.Status >= 400 && upstream.Status < 500 {
			RespondError(c, http.StatusUnauthorized, "login rejected by the store", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	if partner.ID == "" {
		RespondError(c, http.StatusUnauthorized, "login rejected by the store", nil)
		return
	}

	token, err := middleware.NewToken([]byte(h.Env.JWTSecret), partner.ID, utils.FirstNonEmpty(partner.Name, partner.Email))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create session token", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "owner_id="+partner.ID)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  partner,
	})
}
