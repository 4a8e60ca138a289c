package tests

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"wallet/internal/domain"
	"wallet/internal/service"
)

func newWalletFixture() (*service.WalletService, *MockTripRepository, *MockFuelLogRepository, *MockCacheStore) {
	tripRepo := NewMockTripRepository()
	fuelRepo := NewMockFuelLogRepository()
	cache := NewMockCacheStore()
	settingsService := service.NewSettingsService(nil, NewMockSettingsRepository(), tripRepo, nil, nil, testDefaults)
	return service.NewWalletService(tripRepo, fuelRepo, settingsService, cache), tripRepo, fuelRepo, cache
}

func storedTrip(id string, balance, earnings, tips, fuelUsed float64) *domain.Trip {
	return &domain.Trip{
		ID:          id,
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00",
		TripBalance: balance,
		Earnings:    earnings,
		Tips:        tips,
		FuelUsed:    fuelUsed,
	}
}

func TestWallet_BalanceSumsAllTrips(t *testing.T) {
	t.Parallel()

	svc, tripRepo, _, _ := newWalletFixture()
	tripRepo.AddTrip(storedTrip("t1", 50, 870, 20, 0.4))
	tripRepo.AddTrip(storedTrip("t2", -30, 200, 0, 0.2))

	balance, err := svc.Balance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if balance.Balance != 20 {
		t.Errorf("balance: got %v, want 20", balance.Balance)
	}
	if balance.TotalEarnings != 1070 {
		t.Errorf("total earnings: got %v, want 1070", balance.TotalEarnings)
	}
	if balance.TotalTips != 20 {
		t.Errorf("total tips: got %v, want 20", balance.TotalTips)
	}
}

func TestWallet_BalanceServedFromCache(t *testing.T) {
	t.Parallel()

	svc, tripRepo, _, cache := newWalletFixture()
	tripRepo.AddTrip(storedTrip("t1", 50, 870, 20, 0.4))

	ctx := context.Background()
	if _, err := svc.Balance(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.SetBalanceCallCount != 1 {
		t.Fatalf("expected the first read to fill the cache")
	}

	// A repo failure is invisible while the cache holds the value.
	tripRepo.GetAllError = ErrMockTimeout
	balance, err := svc.Balance(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance.Balance != 50 {
		t.Errorf("cached balance: got %v, want 50", balance.Balance)
	}
}

func TestWallet_FuelLevelAndRange(t *testing.T) {
	t.Parallel()

	svc, tripRepo, fuelRepo, _ := newWalletFixture()
	tripRepo.AddTrip(storedTrip("t1", 0, 0, 0, 0.4))
	tripRepo.AddTrip(storedTrip("t2", 0, 0, 0, 1.6))
	fuelRepo.AddFuelLog(&domain.FuelLog{ID: "f1", Liters: 10})

	level, rangeKM, err := svc.FuelLevel(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(level-8) > 1e-9 {
		t.Errorf("fuel level: got %v, want 8", level)
	}
	// 8 L at the default 25 km/L.
	if math.Abs(rangeKM-200) > 1e-9 {
		t.Errorf("estimated range: got %v, want 200", rangeKM)
	}
}

func TestWallet_SummaryIncludesFuelStatistics(t *testing.T) {
	t.Parallel()

	svc, tripRepo, fuelRepo, cache := newWalletFixture()
	tripRepo.AddTrip(storedTrip("t1", 50, 870, 20, 0.4))
	fuelRepo.AddFuelLog(&domain.FuelLog{ID: "f1", Liters: 10})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TripCount != 1 {
		t.Errorf("trip count: got %d, want 1", summary.TripCount)
	}
	if summary.TotalRefueled != 10 {
		t.Errorf("total refueled: got %v, want 10", summary.TotalRefueled)
	}
	if math.Abs(summary.CurrentFuel-9.6) > 1e-9 {
		t.Errorf("current fuel: got %v, want 9.6", summary.CurrentFuel)
	}
	if math.Abs(summary.EstimatedRangeKM-240) > 1e-9 {
		t.Errorf("estimated range: got %v, want 240", summary.EstimatedRangeKM)
	}
	if !cache.HasCachedSummary() {
		t.Error("expected the summary to be cached")
	}
}

func TestWallet_SummaryEmptyHistory(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newWalletFixture()

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TripCount != 0 {
		t.Errorf("trip count: got %d, want 0", summary.TripCount)
	}
	if summary.CurrentFuel != 0 {
		t.Errorf("current fuel: got %v, want 0", summary.CurrentFuel)
	}
}

func TestWallet_BalancePropagatesRepoError(t *testing.T) {
	t.Parallel()

	svc, tripRepo, _, _ := newWalletFixture()
	tripRepo.GetAllError = ErrMockTimeout

	_, err := svc.Balance(context.Background())
	if !errors.Is(err, ErrMockTimeout) {
		t.Errorf("got %v, want the repository error", err)
	}
}
