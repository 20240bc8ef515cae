package services

import (
	"context"
	"math"

	"travelpartner/internal/domain"
	"travelpartner/internal/domain/models"
	"travelpartner/internal/utils"
)

// RideSource is the read side of the external store.
type RideSource interface {
	RidesByOwner(ctx context.Context, ownerID string) ([]models.Ride, error)
}

// Overview is everything the dashboard landing page renders in one response.
type Overview struct {
	Rides          []models.Ride         `json:"rides"`
	Summary        domain.RevenueSummary `json:"summary"`
	TotalRides     int                   `json:"totalRides"`
	OnTrip         int                   `json:"onTrip"`
	AverageRevenue float64               `json:"averageRevenue"`
}

// DashboardService assembles the partner overview: one store fetch, then
// pure aggregation over the result.
type DashboardService struct {
	Rides     RideSource
	RequestID string
}

func (s DashboardService) Overview(ctx context.Context, ownerID string) (Overview, error) {
	rides, err := s.Rides.RidesByOwner(ctx, ownerID)
	if err != nil {
		return Overview{}, err
	}
	utils.LogEvent(s.RequestID, "dashboard", "overview", "owner_id="+ownerID)

	out := Overview{
		Rides:      rides,
		Summary:    domain.Aggregate(rides),
		TotalRides: len(rides),
	}
	for _, ride := range rides {
		if ride.RunningStatus == models.RunningOnTrip {
			out.OnTrip++
		}
	}
	if len(rides) > 0 {
		out.AverageRevenue = math.Round(out.Summary.TotalRevenue / float64(len(rides)))
	}
	return out, nil
}
