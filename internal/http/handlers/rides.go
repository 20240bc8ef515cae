package handlers

import (
	"net/http"
	"time"

	"travelpartner/internal/domain"
	"travelpartner/internal/domain/models"
	"travelpartner/internal/http/middleware"
	"travelpartner/internal/store"
	"travelpartner/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/rides
func (h *Handlers) GetRides(c *gin.Context) {
	rides, err := h.Store.RidesByOwner(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rides)
}

type statusUpdateRequest struct {
	RunningStatus string `json:"runningStatus" binding:"required"`
	IsAvailable   *bool  `json:"isAvailable" binding:"required"`
}

// UpdateRideStatus proxies a status-only patch. The dashboard applies its
// optimistic in-memory patch itself; on failure here nothing was changed
// upstream, so the caller just reverts and re-fetches.
//
// PATCH /api/rides/:id/status
func (h *Handlers) UpdateRideStatus(c *gin.Context) {
	var req statusUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if !models.ValidRunningStatus(req.RunningStatus) {
		RespondDomainError(c, domain.ValidationError{Field: "runningStatus", Msg: "must be Available, On A Trip or Unavailable"})
		return
	}

	updated, err := h.Store.UpdateStatus(c.Request.Context(), c.Param("id"), req.RunningStatus, *req.IsAvailable)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "rides", "update_status", "ride_id="+c.Param("id")+" status="+req.RunningStatus)
	c.JSON(http.StatusOK, updated)
}

type detailUpdateRequest struct {
	store.DetailPatch
}

// UpdateRideDetails forwards the subset of vehicle/trip fields the partner
// edited. Pickup/drop timestamps are normalized to RFC 3339 before they
// reach the store.
//
// PATCH /api/rides/:id/details
func (h *Handlers) UpdateRideDetails(c *gin.Context) {
	var req detailUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := normalizeField(req.PickupDate); err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "pickupD", Msg: "unrecognized date format", Err: err})
		return
	}
	if err := normalizeField(req.DropDate); err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "dropD", Msg: "unrecognized date format", Err: err})
		return
	}

	updated, err := h.Store.UpdateDetails(c.Request.Context(), c.Param("id"), req.DetailPatch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "rides", "update_details", "ride_id="+c.Param("id"))
	c.JSON(http.StatusOK, updated)
}

func normalizeField(ts *string) error {
	if ts == nil {
		return nil
	}
	normalized, err := normalizeTimestamp(*ts)
	if err != nil {
		return err
	}
	*ts = normalized
	return nil
}

// normalizeTimestamp accepts the datetime-local and RFC 3339 shapes the form
// produces and renders RFC 3339 UTC.
func normalizeTimestamp(raw string) (string, error) {
	raw = utils.TrimOrEmpty(raw)
	layouts := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02"}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
		lastErr = err
	}
	return "", lastErr
}
