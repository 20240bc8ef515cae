package seatconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"travelpartner/internal/domain/models"
	"travelpartner/internal/utils"
)

// Editable seat fields.
const (
	FieldSeatNumber = "seatNumber"
	FieldSeatType   = "seatType"
	FieldSeatPrice  = "seatPrice"
	FieldIsBooked   = "isBooked"
	FieldBookedBy   = "bookedBy"
)

const maxBookedByLen = 100

// Violation codes, ordered by the check sequence in Validate.
const (
	CodeEmptyConfiguration   = "empty_configuration"
	CodeDuplicateSeatNumbers = "duplicate_seat_numbers"
	CodeInvalidSeatNumber    = "invalid_seat_number"
	CodeNegativePrice        = "negative_price"
	CodeMissingBookedBy      = "missing_booked_by"
	CodeMinimumSeats         = "minimum_seats"
)

// Violation is a user-displayable consistency failure of the working list.
// Position is 1-based; Numbers carries the offending seat numbers for
// duplicate violations.
type Violation struct {
	Code     string `json:"code"`
	Position int    `json:"position,omitempty"`
	Numbers  []int  `json:"numbers,omitempty"`
}

func (v *Violation) Error() string {
	switch v.Code {
	case CodeEmptyConfiguration:
		return "at least one seat is required"
	case CodeDuplicateSeatNumbers:
		nums := make([]string, len(v.Numbers))
		for i, n := range v.Numbers {
			nums[i] = strconv.Itoa(n)
		}
		return "duplicate seat numbers found: " + strings.Join(nums, ", ")
	case CodeInvalidSeatNumber:
		return fmt.Sprintf("seat %d: invalid seat number", v.Position)
	case CodeNegativePrice:
		return fmt.Sprintf("seat %d: price cannot be negative", v.Position)
	case CodeMissingBookedBy:
		return fmt.Sprintf("seat %d: booked by is required for booked seats", v.Position)
	case CodeMinimumSeats:
		return "at least one seat must remain"
	}
	return "invalid seat configuration"
}

// ErrSuperseded reports a save that a newer save for the same session
// canceled. It is not a failure: the newer write is the one that applied.
var ErrSuperseded = errors.New("save superseded by a newer save")

// ErrSaveInFlight refuses session teardown while a save is outstanding.
var ErrSaveInFlight = errors.New("a save is still in flight for this session")

// Saver pushes a whole replacement seat list to the external store.
type Saver interface {
	ReplaceSeatConfig(ctx context.Context, rideID string, seats []models.Seat) error
}

// SaverFunc adapts a function to the Saver interface, mainly for tests.
type SaverFunc func(ctx context.Context, rideID string, seats []models.Seat) error

func (f SaverFunc) ReplaceSeatConfig(ctx context.Context, rideID string, seats []models.Seat) error {
	return f(ctx, rideID, seats)
}

// Session owns the scratch copy of one ride's seat list for the duration of
// an edit. The copy never leaks back into canonical state: Save replaces the
// store-side list wholesale, Close just drops the copy.
type Session struct {
	ID     string
	RideID string

	mu          sync.Mutex
	seats       []models.Seat
	saver       Saver
	cancelSave  context.CancelFunc
	saveSeq     uint64
	activeSaves int
	lastUsed    time.Time
}

// newSession seeds the working list from the ride's persisted seatConfig,
// sanitizing each entry, or with a single default seat when the ride has none.
func newSession(id string, ride models.Ride, saver Saver) *Session {
	seats := make([]models.Seat, 0, len(ride.SeatConfig))
	for i, seat := range ride.SeatConfig {
		number := seat.SeatNumber
		if number <= 0 {
			number = i + 1
		}
		seats = append(seats, models.Seat{
			SeatNumber: number,
			SeatType:   sanitizeSeatType(seat.SeatType),
			SeatPrice:  math.Max(seat.SeatPrice, 0),
			IsBooked:   seat.IsBooked,
			BookedBy:   utils.Truncate(utils.TrimOrEmpty(seat.BookedBy), maxBookedByLen),
		})
	}
	if len(seats) == 0 {
		seats = []models.Seat{{SeatNumber: 1, SeatType: models.SeatTypeAC}}
	}
	return &Session{ID: id, RideID: ride.ID, seats: seats, saver: saver, lastUsed: time.Now()}
}

// Seats returns a copy of the working list.
func (s *Session) Seats() []models.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSeats(s.seats)
}

// Counts returns the booked and available seat counts of the working list.
func (s *Session) Counts() (booked, available int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range s.seats {
		if seat.IsBooked {
			booked++
		}
	}
	return booked, len(s.seats) - booked
}

// SetField sanitizes raw for the named field and writes it into the seat at
// index. Out-of-range indexes and unknown fields are silent no-ops. Marking a
// seat available clears its bookedBy.
func (s *Session) SetField(index int, field string, raw any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	if index < 0 || index >= len(s.seats) {
		return
	}
	seat := &s.seats[index]

	switch field {
	case FieldSeatNumber:
		seat.SeatNumber = int(sanitizeNumber(raw))
	case FieldSeatPrice:
		seat.SeatPrice = sanitizeNumber(raw)
	case FieldSeatType:
		seat.SeatType = sanitizeSeatType(raw)
	case FieldBookedBy:
		str, _ := raw.(string)
		seat.BookedBy = utils.Truncate(utils.TrimOrEmpty(str), maxBookedByLen)
	case FieldIsBooked:
		booked := sanitizeBool(raw)
		seat.IsBooked = booked
		if !booked {
			seat.BookedBy = ""
		}
	}
}

// AddSeat appends a seat with the lowest positive number not already in use.
func (s *Session) AddSeat() models.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	used := map[int]bool{}
	for _, seat := range s.seats {
		used[seat.SeatNumber] = true
	}
	next := 1
	for used[next] {
		next++
	}
	seat := models.Seat{SeatNumber: next, SeatType: models.SeatTypeAC}
	s.seats = append(s.seats, seat)
	return seat
}

// RemoveSeat deletes the seat at index. The list never shrinks below one
// seat; removing the last one fails and leaves the list unchanged.
func (s *Session) RemoveSeat(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()

	if len(s.seats) <= 1 {
		return &Violation{Code: CodeMinimumSeats}
	}
	if index < 0 || index >= len(s.seats) {
		return nil
	}
	s.seats = append(s.seats[:index], s.seats[index+1:]...)
	return nil
}

// Validate returns the first violation of the working list, or nil.
func (s *Session) Validate() *Violation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validateSeats(s.seats)
}

func validateSeats(seats []models.Seat) *Violation {
	if len(seats) == 0 {
		return &Violation{Code: CodeEmptyConfiguration}
	}

	seen := map[int]int{}
	dupSet := map[int]bool{}
	for _, seat := range seats {
		seen[seat.SeatNumber]++
		if seen[seat.SeatNumber] > 1 {
			dupSet[seat.SeatNumber] = true
		}
	}
	if len(dupSet) > 0 {
		dups := make([]int, 0, len(dupSet))
		for n := range dupSet {
			dups = append(dups, n)
		}
		sort.Ints(dups)
		return &Violation{Code: CodeDuplicateSeatNumbers, Numbers: dups}
	}

	for i, seat := range seats {
		if seat.SeatNumber <= 0 {
			return &Violation{Code: CodeInvalidSeatNumber, Position: i + 1}
		}
		if seat.SeatPrice < 0 {
			return &Violation{Code: CodeNegativePrice, Position: i + 1}
		}
		if seat.IsBooked && strings.TrimSpace(seat.BookedBy) == "" {
			return &Violation{Code: CodeMissingBookedBy, Position: i + 1}
		}
	}
	return nil
}

// Save validates the working list and, when it is consistent, issues exactly
// one replace-whole-list update to the store. An invalid list never reaches
// the network. Issuing a new save cancels any outstanding save for this
// session; the canceled one returns ErrSuperseded instead of a failure.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	s.lastUsed = time.Now()
	if v := validateSeats(s.seats); v != nil {
		s.mu.Unlock()
		return v
	}
	if s.cancelSave != nil {
		s.cancelSave()
	}
	saveCtx, cancel := context.WithCancel(ctx)
	s.cancelSave = cancel
	s.saveSeq++
	seq := s.saveSeq
	s.activeSaves++
	snapshot := cloneSeats(s.seats)
	s.mu.Unlock()

	err := s.saver.ReplaceSeatConfig(saveCtx, s.RideID, snapshot)

	s.mu.Lock()
	s.activeSaves--
	if s.saveSeq == seq {
		s.cancelSave = nil
	}
	s.mu.Unlock()
	cancel()

	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() == nil {
		return ErrSuperseded
	}
	return err
}

// saving reports whether any save for this session is still outstanding.
func (s *Session) saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeSaves > 0
}

func cloneSeats(seats []models.Seat) []models.Seat {
	out := make([]models.Seat, len(seats))
	copy(out, seats)
	return out
}

// sanitizeNumber coerces raw to a non-negative floored number. Anything that
// fails to parse becomes zero.
func sanitizeNumber(raw any) float64 {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	return math.Floor(n)
}

func sanitizeSeatType(raw any) string {
	if s, ok := raw.(string); ok {
		if s == models.SeatTypeAC || s == models.SeatTypeNonAC {
			return s
		}
	}
	return models.SeatTypeAC
}

func sanitizeBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}
