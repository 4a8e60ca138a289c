package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wallet/internal/domain"
	"wallet/internal/redis"
	"wallet/internal/repository"
)

// FuelService handles fuel log operations.
type FuelService struct {
	fuelRepo     repository.FuelLogRepository
	cache        redis.CacheStoreInterface
	tankCapacity float64 // max liters a single refill may add
}

// NewFuelService creates a new FuelService.
func NewFuelService(fuelRepo repository.FuelLogRepository, cache redis.CacheStoreInterface, tankCapacity float64) *FuelService {
	return &FuelService{
		fuelRepo:     fuelRepo,
		cache:        cache,
		tankCapacity: tankCapacity,
	}
}

// FuelLogInput contains the caller-supplied fields of a fuel purchase.
// Liters are computed from amount and price, never accepted directly.
type FuelLogInput struct {
	Date          time.Time
	Time          string
	Station       string
	Location      string
	Amount        float64
	PricePerLiter float64
}

// CreateFuelLog validates the purchase, computes the liters bought, and
// persists the log. A purchase implying more liters than the tank holds
// is rejected.
func (s *FuelService) CreateFuelLog(ctx context.Context, input FuelLogInput) (*domain.FuelLog, error) {
	liters, err := s.validateFuelInput(input)
	if err != nil {
		return nil, err
	}

	log := &domain.FuelLog{
		ID:            uuid.New().String(),
		Date:          normalizeDate(input.Date),
		Time:          input.Time,
		Station:       input.Station,
		Location:      input.Location,
		Amount:        input.Amount,
		PricePerLiter: input.PricePerLiter,
		Liters:        liters,
	}

	if err := s.fuelRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return log, nil
}

// UpdateFuelLog replaces the whole record of an existing fuel log.
func (s *FuelService) UpdateFuelLog(ctx context.Context, logID string, input FuelLogInput) (*domain.FuelLog, error) {
	if logID == "" {
		return nil, ErrInvalidFuelLogID
	}

	liters, err := s.validateFuelInput(input)
	if err != nil {
		return nil, err
	}

	log, err := s.fuelRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}

	log.Date = normalizeDate(input.Date)
	log.Time = input.Time
	log.Station = input.Station
	log.Location = input.Location
	log.Amount = input.Amount
	log.PricePerLiter = input.PricePerLiter
	log.Liters = liters

	if err := s.fuelRepo.Update(ctx, log); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return log, nil
}

// DeleteFuelLog removes a fuel log by ID.
func (s *FuelService) DeleteFuelLog(ctx context.Context, logID string) error {
	if logID == "" {
		return ErrInvalidFuelLogID
	}

	if err := s.fuelRepo.Delete(ctx, logID); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

// GetFuelLog retrieves a fuel log by ID.
func (s *FuelService) GetFuelLog(ctx context.Context, logID string) (*domain.FuelLog, error) {
	if logID == "" {
		return nil, ErrInvalidFuelLogID
	}

	return s.fuelRepo.GetByID(ctx, logID)
}

// GetAllFuelLogs retrieves all fuel logs, newest first.
func (s *FuelService) GetAllFuelLogs(ctx context.Context) ([]*domain.FuelLog, error) {
	return s.fuelRepo.GetAll(ctx)
}

// validateFuelInput checks the input and returns the computed liters.
func (s *FuelService) validateFuelInput(input FuelLogInput) (float64, error) {
	if input.Date.IsZero() {
		return 0, ErrMissingDate
	}

	if input.Time == "" {
		return 0, ErrMissingTime
	}

	if input.Station == "" {
		return 0, ErrMissingStation
	}

	if input.Location == "" {
		return 0, ErrMissingLocation
	}

	if input.Amount < 0 {
		return 0, fmt.Errorf("%w: amount", ErrNegativeValue)
	}

	liters, err := LitersPurchased(input.Amount, input.PricePerLiter)
	if err != nil {
		return 0, err
	}

	if liters > s.tankCapacity {
		return 0, ErrTankCapacityExceeded
	}

	return liters, nil
}

func (s *FuelService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
