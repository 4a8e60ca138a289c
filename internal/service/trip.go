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

// TripService handles trip record operations.
type TripService struct {
	tripRepo        repository.TripRepository
	settingsService *SettingsService
	cache           redis.CacheStoreInterface
}

// NewTripService creates a new TripService.
func NewTripService(
	tripRepo repository.TripRepository,
	settingsService *SettingsService,
	cache redis.CacheStoreInterface,
) *TripService {
	return &TripService{
		tripRepo:        tripRepo,
		settingsService: settingsService,
		cache:           cache,
	}
}

// TripInput contains the caller-supplied fields of a trip. Derived fields
// are computed by the service, never accepted from the caller.
type TripInput struct {
	Date          time.Time
	StartTime     string
	EndTime       string
	Duration      time.Duration
	CashCollected float64
	Fare          float64
	ServiceFee    float64
	Taxes         float64
	DistanceKM    float64
	Tips          float64
}

// CreateTrip validates the input, rejects duplicates, derives the trip
// metrics under the current settings, and persists the trip.
func (s *TripService) CreateTrip(ctx context.Context, input TripInput) (*domain.Trip, error) {
	if err := validateTripInput(input); err != nil {
		return nil, err
	}

	settings, err := s.settingsService.Current(ctx)
	if err != nil {
		return nil, err
	}

	date := normalizeDate(input.Date)

	exists, err := s.tripRepo.ExistsDuplicate(ctx, date, input.StartTime, input.DistanceKM, input.Fare)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTrip
	}

	trip := &domain.Trip{
		ID:            uuid.New().String(),
		Date:          date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Duration:      input.Duration,
		CashCollected: input.CashCollected,
		Fare:          input.Fare,
		ServiceFee:    input.ServiceFee,
		Taxes:         input.Taxes,
		DistanceKM:    input.DistanceKM,
		Tips:          input.Tips,
	}
	DeriveTripMetrics(trip, settings)

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return trip, nil
}

// UpdateTrip replaces the inputs of an existing trip and re-derives the
// whole derived set. Partial updates are not supported.
func (s *TripService) UpdateTrip(ctx context.Context, tripID string, input TripInput) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	if err := validateTripInput(input); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsService.Current(ctx)
	if err != nil {
		return nil, err
	}

	trip.Date = normalizeDate(input.Date)
	trip.StartTime = input.StartTime
	trip.EndTime = input.EndTime
	trip.Duration = input.Duration
	trip.CashCollected = input.CashCollected
	trip.Fare = input.Fare
	trip.ServiceFee = input.ServiceFee
	trip.Taxes = input.Taxes
	trip.DistanceKM = input.DistanceKM
	trip.Tips = input.Tips
	DeriveTripMetrics(trip, settings)

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return trip, nil
}

// DeleteTrip removes a trip by ID.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	if tripID == "" {
		return ErrInvalidTripID
	}

	if err := s.tripRepo.Delete(ctx, tripID); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	return s.tripRepo.GetByID(ctx, tripID)
}

// GetAllTrips retrieves all trips, newest first.
func (s *TripService) GetAllTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

func (s *TripService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

// validateTripInput rejects missing required fields and negative numbers.
// Validation is complete before any mutation is attempted.
func validateTripInput(input TripInput) error {
	if input.Date.IsZero() {
		return ErrMissingDate
	}

	if input.StartTime == "" {
		return ErrMissingStartTime
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"cash_collected", input.CashCollected},
		{"fare", input.Fare},
		{"service_fee", input.ServiceFee},
		{"taxes", input.Taxes},
		{"distance_km", input.DistanceKM},
		{"tips", input.Tips},
		{"duration", input.Duration.Seconds()},
	}

	for _, field := range fields {
		if field.value < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeValue, field.name)
		}
	}

	return nil
}

// normalizeDate strips the time component so date comparisons and the
// duplicate check operate on calendar days.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
