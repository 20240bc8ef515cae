package services

import (
	"context"
	"errors"
	"testing"

	"travelpartner/internal/domain/models"
)

type rideSourceFunc func(ctx context.Context, ownerID string) ([]models.Ride, error)

func (f rideSourceFunc) RidesByOwner(ctx context.Context, ownerID string) ([]models.Ride, error) {
	return f(ctx, ownerID)
}

func sampleRides() []models.Ride {
	return []models.Ride{
		{
			ID: "r1", Make: "Maruti", Model: "Ertiga",
			PickupPoint: "Delhi", DropPoint: "Jaipur",
			SharingType:   models.SharingShared,
			RunningStatus: models.RunningOnTrip,
			SeatConfig: []models.Seat{
				{SeatNumber: 1, SeatType: models.SeatTypeAC, SeatPrice: 100, IsBooked: true, BookedBy: "Asha"},
				{SeatNumber: 2, SeatType: models.SeatTypeAC, SeatPrice: 50},
			},
		},
		{
			ID: "r2", SharingType: models.SharingPrivate, Price: 501,
			RunningStatus: models.RunningAvailable,
		},
	}
}

func TestDashboardOverview(t *testing.T) {
	svc := DashboardService{
		Rides: rideSourceFunc(func(ctx context.Context, ownerID string) ([]models.Ride, error) {
			if ownerID != "owner-1" {
				t.Errorf("unexpected owner id %q", ownerID)
			}
			return sampleRides(), nil
		}),
	}

	got, err := svc.Overview(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	if got.TotalRides != 2 || got.OnTrip != 1 {
		t.Fatalf("fleet stats wrong: %+v", got)
	}
	if got.Summary.TotalRevenue != 601 {
		t.Fatalf("total revenue = %v, want 601", got.Summary.TotalRevenue)
	}
	// 601 / 2 rounds to 301, matching the dashboard's display rounding.
	if got.AverageRevenue != 301 {
		t.Fatalf("average revenue = %v, want 301", got.AverageRevenue)
	}
}

func TestDashboardOverviewPropagatesStoreFailure(t *testing.T) {
	wantErr := errors.New("store down")
	svc := DashboardService{
		Rides: rideSourceFunc(func(ctx context.Context, ownerID string) ([]models.Ride, error) {
			return nil, wantErr
		}),
	}
	if _, err := svc.Overview(context.Background(), "owner-1"); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
