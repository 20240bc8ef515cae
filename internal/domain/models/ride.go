package models

// Sharing types a ride can be listed under.
const (
	SharingShared  = "Shared"
	SharingPrivate = "Private"
)

// Running statuses the store accepts for a ride.
const (
	RunningAvailable   = "Available"
	RunningOnTrip      = "On A Trip"
	RunningUnavailable = "Unavailable"
)

// Seat types.
const (
	SeatTypeAC    = "AC"
	SeatTypeNonAC = "Non-AC"
)

// Seat is one bookable unit inside a shared ride.
type Seat struct {
	SeatNumber int     `json:"seatNumber"`
	SeatType   string  `json:"seatType"`
	SeatPrice  float64 `json:"seatPrice"`
	IsBooked   bool    `json:"isBooked"`
	BookedBy   string  `json:"bookedBy"`
}

// Ride mirrors one vehicle record as the external store returns it.
// Field tags follow the store's JSON payload.
type Ride struct {
	ID            string   `json:"_id"`
	Make          string   `json:"make"`
	Model         string   `json:"model"`
	Year          string   `json:"year"`
	Color         string   `json:"color"`
	FuelType      string   `json:"fuelType"`
	Transmission  string   `json:"transmission"`
	VehicleNumber string   `json:"vehicleNumber"`
	VehicleType   string   `json:"vehicleType"`
	Seater        int      `json:"seater"`
	Mileage       string   `json:"mileage"`
	ExtraKm       float64  `json:"extraKm"`
	Price         float64  `json:"price"`
	PerPersonCost float64  `json:"perPersonCost"`
	PickupPoint   string   `json:"pickupP"`
	DropPoint     string   `json:"dropP"`
	PickupDate    string   `json:"pickupD"`
	DropDate      string   `json:"dropD"`
	SharingType   string   `json:"sharingType"`
	SeatConfig    []Seat   `json:"seatConfig"`
	IsAvailable   bool     `json:"isAvailable"`
	RunningStatus string   `json:"runningStatus"`
	Images        []string `json:"images"`
}

// ValidRunningStatus reports whether s is a status the store accepts.
func ValidRunningStatus(s string) bool {
	switch s {
	case RunningAvailable, RunningOnTrip, RunningUnavailable:
		return true
	}
	return false
}
