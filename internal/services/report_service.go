package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"travelpartner/internal/domain"
	"travelpartner/internal/domain/models"
	"travelpartner/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders the partner's revenue summary as a downloadable PDF.
type ReportService struct {
	Rides     RideSource
	RequestID string
	Loader    func(ctx context.Context, ownerID string) ([]models.Ride, error)
}

// GenerateRevenueReport fetches the partner's rides, aggregates them, and
// returns the PDF bytes plus a suggested filename.
func (s ReportService) GenerateRevenueReport(ctx context.Context, ownerID string) ([]byte, string, error) {
	rides, err := s.loadRides(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "generate_revenue", fmt.Sprintf("owner_id=%s rides=%d", ownerID, len(rides)))

	summary := domain.Aggregate(rides)
	pdf, err := buildRevenueReportPDF(summary, rides)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("revenue-report-%s.pdf", time.Now().Format("2006-01-02"))
	return pdf, name, nil
}

func (s ReportService) loadRides(ctx context.Context, ownerID string) ([]models.Ride, error) {
	if s.Loader != nil {
		return s.Loader(ctx, ownerID)
	}
	return s.Rides.RidesByOwner(ctx, ownerID)
}

func buildRevenueReportPDF(summary domain.RevenueSummary, rides []models.Ride) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Revenue Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REVENUE REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Generated        : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Listed vehicles  : %d", len(rides)),
		fmt.Sprintf("Total revenue    : %s", pdfMoney(summary.TotalRevenue)),
		fmt.Sprintf("Booked seats     : %d", summary.TotalBookedSeats),
		fmt.Sprintf("Available seats  : %d", summary.TotalAvailableSeats),
		fmt.Sprintf("Shared revenue   : %s", pdfMoney(summary.SharingTypeRevenue[models.SharingShared])),
		fmt.Sprintf("Private revenue  : %s", pdfMoney(summary.SharingTypeRevenue[models.SharingPrivate])),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	writeBreakdown(pdf, "Revenue by route", summary.RouteRevenue)
	writeBreakdown(pdf, "Revenue by vehicle type", summary.VehicleTypeRevenue)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBreakdown(pdf *gofpdf.Fpdf, title string, revenue map[string]float64) {
	if len(revenue) == 0 {
		return
	}

	keys := make([]string, 0, len(revenue))
	for k := range revenue {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	for _, k := range keys {
		pdf.Cell(120, 6, strings.ReplaceAll(k, "→", "->"))
		pdf.Cell(0, 6, pdfMoney(revenue[k]))
		pdf.Ln(6)
	}
}

// pdfMoney renders amounts with the core Helvetica font, which has no rupee
// glyph, so "Rs" stands in for the currency sign used elsewhere.
func pdfMoney(amount float64) string {
	return "Rs " + strings.TrimPrefix(utils.FormatRupee(amount), "₹")
}
