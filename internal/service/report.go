package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"wallet/internal/domain"
	"wallet/internal/repository"
)

// ReportService filters trips by period and reduces them into aggregate
// reports. It only sums the derived fields already stored on each trip;
// nothing is re-derived here.
type ReportService struct {
	tripRepo repository.TripRepository
}

// NewReportService creates a new ReportService.
func NewReportService(tripRepo repository.TripRepository) *ReportService {
	return &ReportService{tripRepo: tripRepo}
}

// ReportParams contains the period filter parameters. Which fields are
// required depends on the report kind.
type ReportParams struct {
	Day       time.Time // daily
	StartDate time.Time // weekly, inclusive
	EndDate   time.Time // weekly, inclusive
	Month     int       // monthly, 1-12
	Year      int       // monthly
}

// Generate produces the aggregate report for the requested period.
//
// An empty trip list yields ErrNoTripData; a filter matching nothing on a
// non-empty list yields ErrNoTripsInPeriod. The two are distinct so the
// caller can tell "nothing recorded yet" from "nothing in that period".
func (s *ReportService) Generate(ctx context.Context, kind domain.ReportKind, params ReportParams) (*domain.Report, error) {
	filtered, title, err := s.filteredTrips(ctx, kind, params)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Kind:      kind,
		Title:     title,
		TripCount: len(filtered),
	}

	for _, trip := range filtered {
		report.TotalDistanceKM += trip.DistanceKM
		report.TotalEarnings += trip.Earnings
		report.TotalFuelCost += trip.EstimatedFuelCost
	}
	report.NetEarnings = report.TotalEarnings - report.TotalFuelCost

	return report, nil
}

// FilteredTrips returns the trips matched by the period filter, for
// export. Same parameter validation and empty-result semantics as
// Generate.
func (s *ReportService) FilteredTrips(ctx context.Context, kind domain.ReportKind, params ReportParams) ([]*domain.Trip, error) {
	filtered, _, err := s.filteredTrips(ctx, kind, params)
	return filtered, err
}

func (s *ReportService) filteredTrips(ctx context.Context, kind domain.ReportKind, params ReportParams) ([]*domain.Trip, string, error) {
	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}

	if len(trips) == 0 {
		return nil, "", ErrNoTripData
	}

	filtered, title, err := FilterTrips(trips, kind, params)
	if err != nil {
		return nil, "", err
	}

	if len(filtered) == 0 {
		return nil, "", ErrNoTripsInPeriod
	}

	return filtered, title, nil
}

// FilterTrips applies the period filter for the given kind. Parameter
// validation happens here: missing filter inputs are caller errors, not
// empty results.
func FilterTrips(trips []*domain.Trip, kind domain.ReportKind, params ReportParams) ([]*domain.Trip, string, error) {
	switch kind {
	case domain.ReportKindDaily:
		if params.Day.IsZero() {
			return nil, "", ErrMissingReportDate
		}
		day := normalizeDate(params.Day)
		title := "Daily Report for " + day.Format("2006-01-02")
		var filtered []*domain.Trip
		for _, trip := range trips {
			if trip.Date.Equal(day) {
				filtered = append(filtered, trip)
			}
		}
		return filtered, title, nil

	case domain.ReportKindWeekly:
		if params.StartDate.IsZero() || params.EndDate.IsZero() {
			return nil, "", ErrMissingReportRange
		}
		start := normalizeDate(params.StartDate)
		end := normalizeDate(params.EndDate)
		if start.After(end) {
			return nil, "", ErrInvalidReportRange
		}
		title := fmt.Sprintf("Weekly Report for %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
		var filtered []*domain.Trip
		for _, trip := range trips {
			if !trip.Date.Before(start) && !trip.Date.After(end) {
				filtered = append(filtered, trip)
			}
		}
		return filtered, title, nil

	case domain.ReportKindMonthly:
		if params.Month == 0 || params.Year == 0 {
			return nil, "", ErrMissingReportMonth
		}
		if params.Month < 1 || params.Month > 12 {
			return nil, "", ErrInvalidReportMonth
		}
		title := fmt.Sprintf("Monthly Report for %02d/%d", params.Month, params.Year)
		var filtered []*domain.Trip
		for _, trip := range trips {
			if trip.Date.Year() == params.Year && int(trip.Date.Month()) == params.Month {
				filtered = append(filtered, trip)
			}
		}
		return filtered, title, nil

	default:
		return nil, "", ErrInvalidReportKind
	}
}

// FormatReport renders a report as text (for display/print).
func FormatReport(report *domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n", report.Title, strings.Repeat("=", len(report.Title)))
	fmt.Fprintf(&b, "Total Trips: %d\n", report.TripCount)
	fmt.Fprintf(&b, "Total Distance: %.1f km\n", report.TotalDistanceKM)
	fmt.Fprintf(&b, "Total Earnings: %.2f\n", report.TotalEarnings)
	fmt.Fprintf(&b, "Estimated Total Fuel Cost: %.2f\n", report.TotalFuelCost)
	fmt.Fprintf(&b, "Net Earnings (Earnings - Estimated Fuel Cost): %.2f\n", report.NetEarnings)
	return b.String()
}

// csvHeader is the column set of an exported trip, inputs then derived.
var csvHeader = []string{
	"date", "time", "end_time", "duration",
	"cash_collected", "fare", "service_fee", "taxes", "distance_km", "tips",
	"earnings", "trip_balance", "discount", "discount_rate", "earnings_per_km",
	"fuel_used", "estimated_fuel_cost", "service_fee_percent", "taxes_percent",
}

// WriteCSV writes the given trips as CSV, one row per trip.
func WriteCSV(w io.Writer, trips []*domain.Trip) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, trip := range trips {
		record := []string{
			trip.Date.Format("2006-01-02"),
			trip.StartTime,
			trip.EndTime,
			formatDuration(trip.Duration),
			formatAmount(trip.CashCollected),
			formatAmount(trip.Fare),
			formatAmount(trip.ServiceFee),
			formatAmount(trip.Taxes),
			formatAmount(trip.DistanceKM),
			formatAmount(trip.Tips),
			formatAmount(trip.Earnings),
			formatAmount(trip.TripBalance),
			formatAmount(trip.Discount),
			formatAmount(trip.DiscountRate),
			formatAmount(trip.EarningsPerKM),
			formatAmount(trip.FuelUsed),
			formatAmount(trip.EstimatedFuelCost),
			formatAmount(trip.ServiceFeePercent),
			formatAmount(trip.TaxesPercent),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDuration renders a duration as "HH:MM:SS".
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
