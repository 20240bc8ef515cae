package handlers

import (
	"net/http"
	"strconv"

	"travelpartner/internal/domain"
	"travelpartner/internal/http/middleware"
	"travelpartner/internal/seatconfig"
	"travelpartner/internal/utils"

	"github.com/gin-gonic/gin"
)

func sessionView(sess *seatconfig.Session) gin.H {
	booked, available := sess.Counts()
	return gin.H{
		"sessionId": sess.ID,
		"rideId":    sess.RideID,
		"seats":     sess.Seats(),
		"booked":    booked,
		"available": available,
	}
}

// OpenSeatSession snapshots one ride's seat list into a fresh edit session.
// The ride must belong to the authenticated partner.
//
// POST /api/rides/:id/seat-session
func (h *Handlers) OpenSeatSession(c *gin.Context) {
	rideID := c.Param("id")
	rides, err := h.Store.RidesByOwner(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	for _, ride := range rides {
		if ride.ID == rideID {
			sess := h.Sessions.Open(ride)
			utils.LogEvent(middleware.GetRequestID(c), "seatconfig", "open", "ride_id="+rideID+" session_id="+sess.ID)
			c.JSON(http.StatusCreated, sessionView(sess))
			return
		}
	}
	RespondDomainError(c, domain.NotFoundError{Resource: "ride"})
}

func (h *Handlers) session(c *gin.Context) (*seatconfig.Session, bool) {
	sess, ok := h.Sessions.Get(c.Param("sid"))
	if !ok {
		RespondDomainError(c, domain.NotFoundError{Resource: "seat session"})
		return nil, false
	}
	return sess, true
}

// GET /api/seat-sessions/:sid
func (h *Handlers) GetSeatSession(c *gin.Context) {
	if sess, ok := h.session(c); ok {
		c.JSON(http.StatusOK, sessionView(sess))
	}
}

type seatFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// UpdateSeat sanitizes and writes one field of one seat in the working list.
//
// PATCH /api/seat-sessions/:sid/seats/:index
func (h *Handlers) UpdateSeat(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req seatFieldRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "index", Msg: "must be an integer"})
		return
	}

	sess.SetField(index, req.Field, req.Value)
	c.JSON(http.StatusOK, sessionView(sess))
}

// POST /api/seat-sessions/:sid/seats
func (h *Handlers) AddSeat(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	seat := sess.AddSeat()
	view := sessionView(sess)
	view["added"] = seat
	c.JSON(http.StatusCreated, view)
}

// DELETE /api/seat-sessions/:sid/seats/:index
func (h *Handlers) RemoveSeat(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "index", Msg: "must be an integer"})
		return
	}
	if err := sess.RemoveSeat(index); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(sess))
}

// SaveSeatSession validates the working list and replaces the ride's seat
// configuration in the store. The session stays open so the caller can keep
// editing or close it explicitly.
//
// POST /api/seat-sessions/:sid/save
func (h *Handlers) SaveSeatSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := sess.Save(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "seatconfig", "save", "ride_id="+sess.RideID+" session_id="+sess.ID)
	c.JSON(http.StatusOK, gin.H{"message": "seat configuration updated"})
}

// CloseSeatSession discards the working copy. Cancel loses nothing upstream;
// teardown is refused while a save is still in flight.
//
// DELETE /api/seat-sessions/:sid
func (h *Handlers) CloseSeatSession(c *gin.Context) {
	if err := h.Sessions.Close(c.Param("sid")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}
