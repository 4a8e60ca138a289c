package repository

import (
	"context"

	"wallet/internal/domain"
)

// FuelLogRepository defines the persistence operations for fuel logs.
type FuelLogRepository interface {
	// Create persists a new fuel log.
	Create(ctx context.Context, log *domain.FuelLog) error

	// GetByID retrieves a fuel log by ID.
	GetByID(ctx context.Context, id string) (*domain.FuelLog, error)

	// GetAll retrieves all fuel logs ordered newest-first by date then time.
	GetAll(ctx context.Context) ([]*domain.FuelLog, error)

	// Update updates an existing fuel log.
	Update(ctx context.Context, log *domain.FuelLog) error

	// Delete removes a fuel log by ID.
	Delete(ctx context.Context, id string) error
}
