package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wallet/internal/domain"
	"wallet/internal/redis"
	"wallet/internal/repository"
	"wallet/internal/repository/postgres"
)

// recalcLockTTL bounds how long a settings change may hold the
// recalculation lock before it expires on its own.
const recalcLockTTL = 30 * time.Second

// SettingsService handles the tracker settings and the full trip
// recalculation a settings change triggers.
type SettingsService struct {
	db           *sql.DB
	settingsRepo repository.SettingsRepository
	tripRepo     repository.TripRepository
	lock         redis.LockStoreInterface
	cache        redis.CacheStoreInterface
	defaults     domain.Settings
}

// NewSettingsService creates a new SettingsService. The defaults are used
// until the first explicit save.
func NewSettingsService(
	db *sql.DB,
	settingsRepo repository.SettingsRepository,
	tripRepo repository.TripRepository,
	lock redis.LockStoreInterface,
	cache redis.CacheStoreInterface,
	defaults domain.Settings,
) *SettingsService {
	return &SettingsService{
		db:           db,
		settingsRepo: settingsRepo,
		tripRepo:     tripRepo,
		lock:         lock,
		cache:        cache,
		defaults:     defaults,
	}
}

// Current returns the settings in effect: the stored row, or the
// configured defaults when nothing has been saved yet.
func (s *SettingsService) Current(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.defaults, nil
		}
		return domain.Settings{}, err
	}

	return *settings, nil
}

// UpdateSettingsRequest contains the parameters for changing the settings.
type UpdateSettingsRequest struct {
	FuelEfficiency float64
	PetrolPrice    float64
}

// Update validates and saves new settings, then re-derives the metrics of
// every stored trip under them. The save and the full recalculation run
// in one transaction so a reload never observes a partial recomputation,
// and a Redis lock keeps concurrent settings changes from interleaving.
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (domain.Settings, error) {
	if req.FuelEfficiency <= 0 {
		return domain.Settings{}, ErrInvalidFuelEfficiency
	}

	if req.PetrolPrice <= 0 {
		return domain.Settings{}, ErrInvalidPetrolPrice
	}

	if s.lock != nil {
		acquired, err := s.lock.AcquireRecalcLock(ctx, recalcLockTTL)
		if err != nil {
			return domain.Settings{}, err
		}
		if !acquired {
			return domain.Settings{}, ErrRecalcInProgress
		}
		defer func() {
			_ = s.lock.ReleaseRecalcLock(ctx)
		}()
	}

	settings := domain.Settings{
		FuelEfficiency: req.FuelEfficiency,
		PetrolPrice:    req.PetrolPrice,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Settings{}, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Transaction-scoped repositories.
	txSettingsRepo := postgres.NewSettingsRepositoryWithTx(tx)
	txTripRepo := postgres.NewTripRepositoryWithTx(tx)

	if err = txSettingsRepo.Save(ctx, &settings); err != nil {
		return domain.Settings{}, err
	}

	trips, err := txTripRepo.GetAll(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	RecalculateTrips(trips, settings)

	for _, trip := range trips {
		if err = txTripRepo.Update(ctx, trip); err != nil {
			return domain.Settings{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Settings{}, err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}

	return settings, nil
}
