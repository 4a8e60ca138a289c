package service

import (
	"math"
	"testing"

	"wallet/internal/domain"
)

func TestSumTripBalances_OrderIndependent(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{
		{TripBalance: 50},
		{TripBalance: -20},
		{TripBalance: 12.5},
	}

	forward := SumTripBalances(trips)

	reversed := []*domain.Trip{trips[2], trips[1], trips[0]}
	backward := SumTripBalances(reversed)

	if forward != backward {
		t.Errorf("sum depends on order: %v vs %v", forward, backward)
	}
	if forward != 42.5 {
		t.Errorf("sum: got %v, want 42.5", forward)
	}
}

func TestSumTripBalances_Empty(t *testing.T) {
	t.Parallel()

	if got := SumTripBalances(nil); got != 0 {
		t.Errorf("empty sum: got %v, want 0", got)
	}
}

func TestCurrentFuelLevel(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{
		{FuelUsed: 0.4},
		{FuelUsed: 1.6},
	}
	logs := []*domain.FuelLog{
		{Liters: 10},
		{Liters: 5},
	}

	if got := CurrentFuelLevel(trips, logs); got != 13 {
		t.Errorf("fuel level: got %v, want 13", got)
	}
}

func TestCurrentFuelLevel_CanGoNegative(t *testing.T) {
	t.Parallel()

	trips := []*domain.Trip{{FuelUsed: 3}}

	// No refills recorded yet. The level reports the deficit rather than
	// clamping to zero.
	if got := CurrentFuelLevel(trips, nil); got != -3 {
		t.Errorf("fuel level: got %v, want -3", got)
	}
}

func TestEstimatedRange(t *testing.T) {
	t.Parallel()

	if got := EstimatedRange(12.6, 25); got != 315 {
		t.Errorf("range: got %v, want 315", got)
	}
	if got := EstimatedRange(0, 25); got != 0 {
		t.Errorf("empty tank range: got %v, want 0", got)
	}
}

func TestBuildSummary(t *testing.T) {
	t.Parallel()

	settings := domain.Settings{FuelEfficiency: 25.0, PetrolPrice: 180.0}

	trips := []*domain.Trip{
		{DistanceKM: 10, Earnings: 870, Tips: 20, TripBalance: 50, Discount: 200, FuelUsed: 0.4, EstimatedFuelCost: 72},
		{DistanceKM: 5, Earnings: 300, Tips: 0, TripBalance: -10, Discount: 0, FuelUsed: 0.2, EstimatedFuelCost: 36},
	}
	logs := []*domain.FuelLog{
		{Liters: 20},
	}

	summary := BuildSummary(trips, logs, settings)

	if summary.TripCount != 2 {
		t.Errorf("trip count: got %d, want 2", summary.TripCount)
	}
	if summary.TotalDistanceKM != 15 {
		t.Errorf("total distance: got %v, want 15", summary.TotalDistanceKM)
	}
	if summary.TotalEarnings != 1170 {
		t.Errorf("total earnings: got %v, want 1170", summary.TotalEarnings)
	}
	if summary.TotalTripBalance != 40 {
		t.Errorf("total trip balance: got %v, want 40", summary.TotalTripBalance)
	}
	if summary.TotalRefueled != 20 {
		t.Errorf("total refueled: got %v, want 20", summary.TotalRefueled)
	}
	if math.Abs(summary.CurrentFuel-19.4) > 1e-9 {
		t.Errorf("current fuel: got %v, want 19.4", summary.CurrentFuel)
	}
	if math.Abs(summary.EstimatedRangeKM-485) > 1e-9 {
		t.Errorf("estimated range: got %v, want 485", summary.EstimatedRangeKM)
	}
}

func TestBuildSummary_NoRecords(t *testing.T) {
	t.Parallel()

	settings := domain.Settings{FuelEfficiency: 25.0, PetrolPrice: 180.0}

	summary := BuildSummary(nil, nil, settings)

	if summary.TripCount != 0 {
		t.Errorf("trip count: got %d, want 0", summary.TripCount)
	}
	if summary.CurrentFuel != 0 {
		t.Errorf("current fuel: got %v, want 0", summary.CurrentFuel)
	}
	if summary.EstimatedRangeKM != 0 {
		t.Errorf("estimated range: got %v, want 0", summary.EstimatedRangeKM)
	}
}
