package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelpartner/internal/domain/models"
	"travelpartner/internal/seatconfig"
	"travelpartner/internal/store"

	"github.com/gin-gonic/gin"
)

func newSeatSessionRig(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	patches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/travel/get-a-car/by-owner/"):
			json.NewEncoder(w).Encode([]models.Ride{
				{
					ID:            "ride-1",
					PickupPoint:   "Dhaka",
					DropPoint:     "Sylhet",
					SharingType:   models.SharingShared,
					RunningStatus: models.RunningAvailable,
					SeatConfig: []models.Seat{
						{SeatNumber: 1, SeatType: models.SeatTypeAC, SeatPrice: 500},
						{SeatNumber: 2, SeatType: models.SeatTypeAC, SeatPrice: 500},
					},
				},
			})
		case strings.HasPrefix(r.URL.Path, "/travel/update-a-car/"):
			patches++
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	storeClient := store.NewClient(srv.URL, 5*time.Second)
	h := &Handlers{
		Store:    storeClient,
		Sessions: seatconfig.NewManager(storeClient),
	}

	r := gin.New()
	r.POST("/rides/:id/seat-session", h.OpenSeatSession)
	r.GET("/seat-sessions/:sid", h.GetSeatSession)
	r.PATCH("/seat-sessions/:sid/seats/:index", h.UpdateSeat)
	r.POST("/seat-sessions/:sid/seats", h.AddSeat)
	r.DELETE("/seat-sessions/:sid/seats/:index", h.RemoveSeat)
	r.POST("/seat-sessions/:sid/save", h.SaveSeatSession)
	r.DELETE("/seat-sessions/:sid", h.CloseSeatSession)
	return r, &patches
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func openSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/rides/ride-1/seat-session", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("open session: status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode open response: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("open session returned no sessionId")
	}
	return resp.SessionID
}

func TestSeatSessionLifecycle(t *testing.T) {
	r, patches := newSeatSessionRig(t)
	sid := openSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/seat-sessions/"+sid+"/seats", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("add seat: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/seat-sessions/"+sid+"/seats/2", gin.H{
		"field": "seatPrice",
		"value": 750,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set field: status = %d, body = %s", w.Code, w.Body.String())
	}
	var view struct {
		Seats []models.Seat `json:"seats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if len(view.Seats) != 3 {
		t.Fatalf("seats = %d, want 3", len(view.Seats))
	}
	if view.Seats[2].SeatPrice != 750 {
		t.Fatalf("seat 3 price = %v, want 750", view.Seats[2].SeatPrice)
	}

	w = doJSON(t, r, http.MethodPost, "/seat-sessions/"+sid+"/save", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("save: status = %d, body = %s", w.Code, w.Body.String())
	}
	if *patches != 1 {
		t.Fatalf("store patches = %d, want 1", *patches)
	}

	w = doJSON(t, r, http.MethodDelete, "/seat-sessions/"+sid, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("close: status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/seat-sessions/"+sid, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after close: status = %d, want 404", w.Code)
	}
}

func TestSaveRespondsWithViolation(t *testing.T) {
	r, patches := newSeatSessionRig(t)
	sid := openSession(t, r)

	w := doJSON(t, r, http.MethodPatch, "/seat-sessions/"+sid+"/seats/0", gin.H{
		"field": "isBooked",
		"value": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set field: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/seat-sessions/"+sid+"/save", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("save: status = %d, want 400", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != seatconfig.CodeMissingBookedBy {
		t.Fatalf("code = %q, want %q", resp.Code, seatconfig.CodeMissingBookedBy)
	}
	if *patches != 0 {
		t.Fatalf("store patches = %d, want 0", *patches)
	}
}

func TestOpenSessionUnknownRide(t *testing.T) {
	r, _ := newSeatSessionRig(t)

	w := doJSON(t, r, http.MethodPost, "/rides/ghost/seat-session", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
