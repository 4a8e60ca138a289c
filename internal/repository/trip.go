package repository

import (
	"context"
	"time"

	"wallet/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves all trips ordered newest-first by date then start time.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// Update updates an existing trip.
	Update(ctx context.Context, trip *domain.Trip) error

	// Delete removes a trip by ID.
	Delete(ctx context.Context, id string) error

	// ExistsDuplicate reports whether a trip with the same
	// (date, start time, distance, fare) tuple already exists.
	ExistsDuplicate(ctx context.Context, date time.Time, startTime string, distanceKM, fare float64) (bool, error)
}
