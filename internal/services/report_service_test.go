package services

import (
	"context"
	"strings"
	"testing"

	"travelpartner/internal/domain/models"
)

func TestGenerateRevenueReport(t *testing.T) {
	svc := ReportService{
		Loader: func(ctx context.Context, ownerID string) ([]models.Ride, error) {
			return sampleRides(), nil
		},
	}

	pdf, filename, err := svc.GenerateRevenueReport(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("GenerateRevenueReport error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("report is empty")
	}
	if !strings.HasPrefix(string(pdf[:5]), "%PDF-") {
		t.Fatalf("output does not look like a PDF: %q", pdf[:5])
	}
	if !strings.HasPrefix(filename, "revenue-report-") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateRevenueReportEmptyFleet(t *testing.T) {
	svc := ReportService{
		Loader: func(ctx context.Context, ownerID string) ([]models.Ride, error) {
			return nil, nil
		},
	}
	pdf, _, err := svc.GenerateRevenueReport(context.Background(), "owner-1")
	if err != nil || len(pdf) == 0 {
		t.Fatalf("empty fleet should still render a report: err=%v len=%d", err, len(pdf))
	}
}
