package domain

import (
	"fmt"

	"travelpartner/internal/domain/models"
)

// RevenueSummary is the aggregate view the dashboard renders. SharingTypeRevenue
// always carries exactly the Shared and Private keys, even over empty input.
type RevenueSummary struct {
	TotalRevenue        float64            `json:"totalRevenue"`
	TotalBookedSeats    int                `json:"totalBookedSeats"`
	TotalAvailableSeats int                `json:"totalAvailableSeats"`
	RouteRevenue        map[string]float64 `json:"routeRevenue"`
	VehicleTypeRevenue  map[string]float64 `json:"vehicleTypeRevenue"`
	SharingTypeRevenue  map[string]float64 `json:"sharingTypeRevenue"`
}

// RideRevenue computes one ride's revenue contribution: the sum of booked seat
// prices when a seat list exists, the flat price for private rides, else zero.
// Incomplete records contribute zero rather than failing.
func RideRevenue(r models.Ride) float64 {
	if len(r.SeatConfig) > 0 {
		var sum float64
		for _, seat := range r.SeatConfig {
			if seat.IsBooked {
				sum += seat.SeatPrice
			}
		}
		return sum
	}
	if r.SharingType == models.SharingPrivate {
		return r.Price
	}
	return 0
}

// Aggregate folds a ride list into a RevenueSummary. It is total over
// arbitrary input: nil and empty slices yield an all-zero summary, and rides
// missing route, make/model, or sharing type are simply left out of the
// corresponding breakdown.
func Aggregate(rides []models.Ride) RevenueSummary {
	out := RevenueSummary{
		RouteRevenue:       map[string]float64{},
		VehicleTypeRevenue: map[string]float64{},
		SharingTypeRevenue: map[string]float64{
			models.SharingShared:  0,
			models.SharingPrivate: 0,
		},
	}

	for _, ride := range rides {
		revenue := RideRevenue(ride)

		for _, seat := range ride.SeatConfig {
			if seat.IsBooked {
				out.TotalBookedSeats++
			} else {
				out.TotalAvailableSeats++
			}
		}

		out.TotalRevenue += revenue

		if ride.PickupPoint != "" && ride.DropPoint != "" {
			route := fmt.Sprintf("%s → %s", ride.PickupPoint, ride.DropPoint)
			out.RouteRevenue[route] += revenue
		}
		if ride.Make != "" && ride.Model != "" {
			out.VehicleTypeRevenue[ride.Make+" "+ride.Model] += revenue
		}
		if _, ok := out.SharingTypeRevenue[ride.SharingType]; ok {
			out.SharingTypeRevenue[ride.SharingType] += revenue
		}
	}

	return out
}
