package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet/internal/domain"
	"wallet/internal/service"
)

func reportTrip(id, date string, distance, earnings, fuelCost float64) *domain.Trip {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &domain.Trip{
		ID:                id,
		Date:              d,
		StartTime:         "09:00",
		DistanceKM:        distance,
		Earnings:          earnings,
		EstimatedFuelCost: fuelCost,
	}
}

func TestReport_DailyAggregates(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(reportTrip("t1", "2026-03-10", 10, 870, 72))
	tripRepo.AddTrip(reportTrip("t2", "2026-03-11", 5, 300, 36))

	svc := service.NewReportService(tripRepo)

	day, _ := time.Parse("2006-01-02", "2026-03-10")
	report, err := svc.Generate(context.Background(), domain.ReportKindDaily, service.ReportParams{Day: day})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TripCount != 1 {
		t.Errorf("trip count: got %d, want 1", report.TripCount)
	}
	if report.TotalEarnings != 870 {
		t.Errorf("total earnings: got %v, want 870", report.TotalEarnings)
	}
	if report.NetEarnings != 798 {
		t.Errorf("net earnings: got %v, want 798", report.NetEarnings)
	}
}

func TestReport_NoDataVersusNoTripsInPeriod(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day, _ := time.Parse("2006-01-02", "2026-03-10")

	// Nothing recorded at all.
	emptyRepo := NewMockTripRepository()
	svc := service.NewReportService(emptyRepo)

	_, err := svc.Generate(ctx, domain.ReportKindDaily, service.ReportParams{Day: day})
	if !errors.Is(err, service.ErrNoTripData) {
		t.Errorf("empty history: got %v, want ErrNoTripData", err)
	}

	// Records exist, but none in the requested period.
	repo := NewMockTripRepository()
	repo.AddTrip(reportTrip("t1", "2026-02-01", 10, 870, 72))
	svc = service.NewReportService(repo)

	_, err = svc.Generate(ctx, domain.ReportKindDaily, service.ReportParams{Day: day})
	if !errors.Is(err, service.ErrNoTripsInPeriod) {
		t.Errorf("empty period: got %v, want ErrNoTripsInPeriod", err)
	}
}

func TestReport_MonthlySpansWholeMonth(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(reportTrip("t1", "2026-03-01", 10, 500, 50))
	tripRepo.AddTrip(reportTrip("t2", "2026-03-31", 20, 700, 100))
	tripRepo.AddTrip(reportTrip("t3", "2026-04-01", 5, 200, 25))

	svc := service.NewReportService(tripRepo)

	report, err := svc.Generate(context.Background(), domain.ReportKindMonthly, service.ReportParams{Month: 3, Year: 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TripCount != 2 {
		t.Errorf("trip count: got %d, want 2", report.TripCount)
	}
	if report.TotalDistanceKM != 30 {
		t.Errorf("total distance: got %v, want 30", report.TotalDistanceKM)
	}
	if report.Title != "Monthly Report for 03/2026" {
		t.Errorf("title: got %q", report.Title)
	}
}

func TestReport_ParamValidationBeforeFiltering(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(reportTrip("t1", "2026-03-10", 10, 870, 72))
	svc := service.NewReportService(tripRepo)
	ctx := context.Background()

	cases := []struct {
		name   string
		kind   domain.ReportKind
		params service.ReportParams
		want   error
	}{
		{"daily without date", domain.ReportKindDaily, service.ReportParams{}, service.ErrMissingReportDate},
		{"weekly without range", domain.ReportKindWeekly, service.ReportParams{}, service.ErrMissingReportRange},
		{"monthly without month", domain.ReportKindMonthly, service.ReportParams{}, service.ErrMissingReportMonth},
		{"unknown kind", domain.ReportKind("hourly"), service.ReportParams{}, service.ErrInvalidReportKind},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Generate(ctx, c.kind, c.params)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestReport_FilteredTripsMatchesGenerate(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(reportTrip("t1", "2026-03-09", 10, 500, 50))
	tripRepo.AddTrip(reportTrip("t2", "2026-03-12", 20, 700, 100))
	tripRepo.AddTrip(reportTrip("t3", "2026-03-20", 5, 200, 25))

	svc := service.NewReportService(tripRepo)

	start, _ := time.Parse("2006-01-02", "2026-03-09")
	end, _ := time.Parse("2006-01-02", "2026-03-15")
	params := service.ReportParams{StartDate: start, EndDate: end}
	ctx := context.Background()

	report, err := svc.Generate(ctx, domain.ReportKindWeekly, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trips, err := svc.FilteredTrips(ctx, domain.ReportKindWeekly, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trips) != report.TripCount {
		t.Errorf("export returned %d trips, report counted %d", len(trips), report.TripCount)
	}
}
