package service

import (
	"context"
	"fmt"

	"wallet/internal/domain"
	"wallet/internal/redis"
	"wallet/internal/repository"
)

// WalletService exposes the derived wallet state: the cash balance, the
// fuel level, and the whole-history summary. All values are whole-list
// reductions over the stored records, cached briefly in Redis.
type WalletService struct {
	tripRepo        repository.TripRepository
	fuelRepo        repository.FuelLogRepository
	settingsService *SettingsService
	cache           redis.CacheStoreInterface
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	tripRepo repository.TripRepository,
	fuelRepo repository.FuelLogRepository,
	settingsService *SettingsService,
	cache redis.CacheStoreInterface,
) *WalletService {
	return &WalletService{
		tripRepo:        tripRepo,
		fuelRepo:        fuelRepo,
		settingsService: settingsService,
		cache:           cache,
	}
}

// Balance returns the current wallet balance with earnings and tips totals.
func (s *WalletService) Balance(ctx context.Context) (*domain.WalletBalance, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetBalance(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	balance := &domain.WalletBalance{
		Balance: SumTripBalances(trips),
	}
	for _, trip := range trips {
		balance.TotalEarnings += trip.Earnings
		balance.TotalTips += trip.Tips
	}

	if s.cache != nil {
		_ = s.cache.SetBalance(ctx, balance)
	}

	return balance, nil
}

// FuelLevel returns the current liters remaining and the estimated range
// they cover.
func (s *WalletService) FuelLevel(ctx context.Context) (level, rangeKM float64, err error) {
	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return 0, 0, err
	}

	logs, err := s.fuelRepo.GetAll(ctx)
	if err != nil {
		return 0, 0, err
	}

	settings, err := s.settingsService.Current(ctx)
	if err != nil {
		return 0, 0, err
	}

	level = CurrentFuelLevel(trips, logs)
	return level, EstimatedRange(level, settings.FuelEfficiency), nil
}

// Summary returns the whole-history financial and fuel summary.
func (s *WalletService) Summary(ctx context.Context) (*domain.Summary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSummary(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.fuelRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsService.Current(ctx)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(trips, logs, settings)

	if s.cache != nil {
		_ = s.cache.SetSummary(ctx, summary)
	}

	return summary, nil
}

// FormatSummary renders the summary as text (for display/print).
func FormatSummary(summary *domain.Summary) string {
	return fmt.Sprintf(`Total Trips: %d
Total Distance: %.1f km
Total Earnings: %.2f
Total Tips: %.2f
Total Trip Balance: %.2f
Total Discounts: %.2f

Fuel Statistics:
Total Fuel Used: %.2f L
Total Refueled: %.2f L
Current Fuel: %.2f L remaining
Estimated Total Fuel Cost: %.2f
Estimated Range: %.1f km
`,
		summary.TripCount,
		summary.TotalDistanceKM,
		summary.TotalEarnings,
		summary.TotalTips,
		summary.TotalTripBalance,
		summary.TotalDiscounts,
		summary.TotalFuelUsed,
		summary.TotalRefueled,
		summary.CurrentFuel,
		summary.TotalFuelCost,
		summary.EstimatedRangeKM,
	)
}
