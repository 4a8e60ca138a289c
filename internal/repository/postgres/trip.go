package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wallet/internal/domain"
	"wallet/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `id, trip_date, start_time, end_time, duration_seconds,
	cash_collected, fare, service_fee, taxes, distance_km, tips,
	earnings, trip_balance, discount, discount_rate, earnings_per_km,
	fuel_used, estimated_fuel_cost, service_fee_percent, taxes_percent`

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.Date,
		trip.StartTime,
		trip.EndTime,
		int64(trip.Duration.Seconds()),
		trip.CashCollected,
		trip.Fare,
		trip.ServiceFee,
		trip.Taxes,
		trip.DistanceKM,
		trip.Tips,
		trip.Earnings,
		trip.TripBalance,
		trip.Discount,
		trip.DiscountRate,
		trip.EarningsPerKM,
		trip.FuelUsed,
		trip.EstimatedFuelCost,
		trip.ServiceFeePercent,
		trip.TaxesPercent,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return trip, nil
}

// GetAll retrieves all trips ordered newest-first by date then start time.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY trip_date DESC, start_time DESC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

// Update updates an existing trip.
func (r *TripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	query := `
		UPDATE trips
		SET trip_date = $1, start_time = $2, end_time = $3, duration_seconds = $4,
			cash_collected = $5, fare = $6, service_fee = $7, taxes = $8,
			distance_km = $9, tips = $10, earnings = $11, trip_balance = $12,
			discount = $13, discount_rate = $14, earnings_per_km = $15,
			fuel_used = $16, estimated_fuel_cost = $17, service_fee_percent = $18,
			taxes_percent = $19
		WHERE id = $20
	`

	result, err := r.q.ExecContext(ctx, query,
		trip.Date,
		trip.StartTime,
		trip.EndTime,
		int64(trip.Duration.Seconds()),
		trip.CashCollected,
		trip.Fare,
		trip.ServiceFee,
		trip.Taxes,
		trip.DistanceKM,
		trip.Tips,
		trip.Earnings,
		trip.TripBalance,
		trip.Discount,
		trip.DiscountRate,
		trip.EarningsPerKM,
		trip.FuelUsed,
		trip.EstimatedFuelCost,
		trip.ServiceFeePercent,
		trip.TaxesPercent,
		trip.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a trip by ID.
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ExistsDuplicate reports whether a trip with the same
// (date, start time, distance, fare) tuple already exists.
func (r *TripRepository) ExistsDuplicate(ctx context.Context, date time.Time, startTime string, distanceKM, fare float64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM trips
		WHERE trip_date = $1 AND start_time = $2 AND distance_km = $3 AND fare = $4
	`

	var count int
	if err := r.q.QueryRowContext(ctx, query, date, startTime, distanceKM, fare).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (*domain.Trip, error) {
	var trip domain.Trip
	var durationSeconds int64

	err := s.Scan(
		&trip.ID,
		&trip.Date,
		&trip.StartTime,
		&trip.EndTime,
		&durationSeconds,
		&trip.CashCollected,
		&trip.Fare,
		&trip.ServiceFee,
		&trip.Taxes,
		&trip.DistanceKM,
		&trip.Tips,
		&trip.Earnings,
		&trip.TripBalance,
		&trip.Discount,
		&trip.DiscountRate,
		&trip.EarningsPerKM,
		&trip.FuelUsed,
		&trip.EstimatedFuelCost,
		&trip.ServiceFeePercent,
		&trip.TaxesPercent,
	)
	if err != nil {
		return nil, err
	}

	trip.Duration = time.Duration(durationSeconds) * time.Second

	return &trip, nil
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
