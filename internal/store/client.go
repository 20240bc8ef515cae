// Package store speaks to the external REST service of record for ride and
// partner data. Nothing in this service persists rides locally; every
// mutation here is a call against the store, and callers re-fetch afterwards.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travelpartner/internal/domain"
	"travelpartner/internal/domain/models"
)

const defaultTimeout = 15 * time.Second

// Partner is the slice of the store's login payload this service cares about.
type Partner struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DetailPatch carries the editable vehicle/trip fields of a ride. Only
// non-nil fields are sent, so a patch updates exactly what the partner
// changed.
type DetailPatch struct {
	Make          *string  `json:"make,omitempty"`
	Model         *string  `json:"model,omitempty"`
	Year          *string  `json:"year,omitempty"`
	Color         *string  `json:"color,omitempty"`
	FuelType      *string  `json:"fuelType,omitempty"`
	Transmission  *string  `json:"transmission,omitempty"`
	VehicleNumber *string  `json:"vehicleNumber,omitempty"`
	VehicleType   *string  `json:"vehicleType,omitempty"`
	Seater        *int     `json:"seater,omitempty"`
	Mileage       *string  `json:"mileage,omitempty"`
	ExtraKm       *float64 `json:"extraKm,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	PerPersonCost *float64 `json:"perPersonCost,omitempty"`
	PickupPoint   *string  `json:"pickupP,omitempty"`
	DropPoint     *string  `json:"dropP,omitempty"`
	PickupDate    *string  `json:"pickupD,omitempty"`
	DropDate      *string  `json:"dropD,omitempty"`
	SharingType   *string  `json:"sharingType,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// RidesByOwner fetches every ride listed by one partner.
func (c *Client) RidesByOwner(ctx context.Context, ownerID string) ([]models.Ride, error) {
	var rides []models.Ride
	path := "/travel/get-a-car/by-owner/" + url.PathEscape(ownerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

// UpdateStatus patches only the availability fields of a ride.
func (c *Client) UpdateStatus(ctx context.Context, rideID, runningStatus string, isAvailable bool) (models.Ride, error) {
	body := map[string]any{
		"runningStatus": runningStatus,
		"isAvailable":   isAvailable,
	}
	var updated models.Ride
	err := c.do(ctx, http.MethodPatch, "/travel/update-a-car/"+url.PathEscape(rideID), body, &updated)
	return updated, err
}

// UpdateDetails patches the subset of vehicle/trip fields present in patch.
func (c *Client) UpdateDetails(ctx context.Context, rideID string, patch DetailPatch) (models.Ride, error) {
	var updated models.Ride
	err := c.do(ctx, http.MethodPatch, "/travel/update-a-car/"+url.PathEscape(rideID), patch, &updated)
	return updated, err
}

// ReplaceSeatConfig swaps a ride's whole seat list in one update. There is no
// per-seat endpoint; the working copy replaces the canonical list wholesale.
func (c *Client) ReplaceSeatConfig(ctx context.Context, rideID string, seats []models.Seat) error {
	body := map[string]any{"seatConfig": seats}
	return c.do(ctx, http.MethodPatch, "/travel/update-a-car/"+url.PathEscape(rideID), body, nil)
}

// Login forwards dashboard credentials to the store, which owns password
// verification. The returned partner identity seeds the session token.
func (c *Client) Login(ctx context.Context, email, password string) (Partner, error) {
	body := map[string]string{"email": email, "password": password}
	var partner Partner
	err := c.do(ctx, http.MethodPost, "/login/dashboard/user", body, &partner)
	return partner, err
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Cancellation passes through untouched so callers can tell a
		// superseded request from a genuine transport failure.
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.UpstreamError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if dest == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return domain.UpstreamError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

// errorMessage pulls the "message" field out of a store error payload.
func errorMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
