package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"wallet/internal/domain"
)

func tripOn(date string, startTime string) *domain.Trip {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &domain.Trip{
		Date:      d,
		StartTime: startTime,
	}
}

func TestFilterTrips_Daily(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{
		tripOn("2026-03-10", "09:00"),
		tripOn("2026-03-10", "14:30"),
		tripOn("2026-03-11", "09:00"),
	}

	day, _ := time.Parse("2006-01-02", "2026-03-10")
	filtered, title, err := FilterTrips(trips, domain.ReportKindDaily, ReportParams{Day: day})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(filtered) != 2 {
		t.Errorf("filtered: got %d trips, want 2", len(filtered))
	}
	if title != "Daily Report for 2026-03-10" {
		t.Errorf("title: got %q", title)
	}
}

func TestFilterTrips_Daily_MissingDate(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{tripOn("2026-03-10", "09:00")}

	_, _, err := FilterTrips(trips, domain.ReportKindDaily, ReportParams{})
	if !errors.Is(err, ErrMissingReportDate) {
		t.Errorf("got %v, want ErrMissingReportDate", err)
	}
}

func TestFilterTrips_Weekly_InclusiveBounds(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{
		tripOn("2026-03-09", "09:00"),
		tripOn("2026-03-12", "09:00"),
		tripOn("2026-03-15", "09:00"),
		tripOn("2026-03-16", "09:00"),
	}

	start, _ := time.Parse("2006-01-02", "2026-03-09")
	end, _ := time.Parse("2006-01-02", "2026-03-15")

	filtered, title, err := FilterTrips(trips, domain.ReportKindWeekly, ReportParams{StartDate: start, EndDate: end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both endpoints are inside the range.
	if len(filtered) != 3 {
		t.Errorf("filtered: got %d trips, want 3", len(filtered))
	}
	if title != "Weekly Report for 2026-03-09 to 2026-03-15" {
		t.Errorf("title: got %q", title)
	}
}

func TestFilterTrips_Weekly_ReversedRange(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{tripOn("2026-03-10", "09:00")}

	start, _ := time.Parse("2006-01-02", "2026-03-15")
	end, _ := time.Parse("2006-01-02", "2026-03-09")

	_, _, err := FilterTrips(trips, domain.ReportKindWeekly, ReportParams{StartDate: start, EndDate: end})
	if !errors.Is(err, ErrInvalidReportRange) {
		t.Errorf("got %v, want ErrInvalidReportRange", err)
	}
}

func TestFilterTrips_Monthly(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{
		tripOn("2026-02-28", "09:00"),
		tripOn("2026-03-01", "09:00"),
		tripOn("2026-03-31", "09:00"),
		tripOn("2027-03-01", "09:00"), // same month, different year
	}

	filtered, title, err := FilterTrips(trips, domain.ReportKindMonthly, ReportParams{Month: 3, Year: 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(filtered) != 2 {
		t.Errorf("filtered: got %d trips, want 2", len(filtered))
	}
	if title != "Monthly Report for 03/2026" {
		t.Errorf("title: got %q", title)
	}
}

func TestFilterTrips_Monthly_BadParams(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{tripOn("2026-03-10", "09:00")}

	cases := []struct {
		name   string
		params ReportParams
		want   error
	}{
		{"missing month and year", ReportParams{}, ErrMissingReportMonth},
		{"missing year", ReportParams{Month: 3}, ErrMissingReportMonth},
		{"month too large", ReportParams{Month: 13, Year: 2026}, ErrInvalidReportMonth},
		{"month negative", ReportParams{Month: -1, Year: 2026}, ErrInvalidReportMonth},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := FilterTrips(trips, domain.ReportKindMonthly, c.params)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestFilterTrips_UnknownKind(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{tripOn("2026-03-10", "09:00")}

	_, _, err := FilterTrips(trips, domain.ReportKind("yearly"), ReportParams{})
	if !errors.Is(err, ErrInvalidReportKind) {
		t.Errorf("got %v, want ErrInvalidReportKind", err)
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	trip := tripOn("2026-03-10", "09:00")
	trip.EndTime = "09:45"
	trip.Duration = 45 * time.Minute
	trip.CashCollected = 800
	trip.Fare = 1000
	trip.ServiceFee = 100
	trip.Taxes = 50
	trip.DistanceKM = 10
	trip.Tips = 20
	DeriveTripMetrics(trip, domain.Settings{FuelEfficiency: 25, PetrolPrice: 180})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []*domain.Trip{trip}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d rows, want header plus one trip", len(records))
	}
	if len(records[0]) != len(csvHeader) {
		t.Fatalf("header has %d columns, want %d", len(records[0]), len(csvHeader))
	}

	row := records[1]
	if row[0] != "2026-03-10" {
		t.Errorf("date column: got %q", row[0])
	}
	if row[3] != "00:45:00" {
		t.Errorf("duration column: got %q, want 00:45:00", row[3])
	}
	if row[10] != "870" {
		t.Errorf("earnings column: got %q, want 870", row[10])
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{90 * time.Second, "00:01:30"},
		{3*time.Hour + 5*time.Minute + 9*time.Second, "03:05:09"},
	}

	for _, c := range cases {
		if got := formatDuration(c.in); got != c.want {
			t.Errorf("formatDuration(%v): got %q, want %q", c.in, got, c.want)
		}
	}
}
