package postgres

import (
	"context"
	"database/sql"
	"errors"

	"wallet/internal/domain"
	"wallet/internal/repository"
)

// FuelLogRepository is a PostgreSQL implementation of repository.FuelLogRepository.
type FuelLogRepository struct {
	q Querier
}

// NewFuelLogRepository creates a new PostgreSQL fuel log repository.
func NewFuelLogRepository(db *sql.DB) *FuelLogRepository {
	return &FuelLogRepository{q: db}
}

// NewFuelLogRepositoryWithTx creates a fuel log repository using a transaction.
func NewFuelLogRepositoryWithTx(tx *sql.Tx) *FuelLogRepository {
	return &FuelLogRepository{q: tx}
}

const fuelLogColumns = `id, log_date, log_time, station, location, amount, price_per_liter, liters`

// Create persists a new fuel log.
func (r *FuelLogRepository) Create(ctx context.Context, log *domain.FuelLog) error {
	query := `
		INSERT INTO fuel_logs (` + fuelLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		log.ID,
		log.Date,
		log.Time,
		log.Station,
		log.Location,
		log.Amount,
		log.PricePerLiter,
		log.Liters,
	)

	return err
}

// GetByID retrieves a fuel log by ID.
func (r *FuelLogRepository) GetByID(ctx context.Context, id string) (*domain.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs WHERE id = $1`

	var log domain.FuelLog
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&log.ID,
		&log.Date,
		&log.Time,
		&log.Station,
		&log.Location,
		&log.Amount,
		&log.PricePerLiter,
		&log.Liters,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &log, nil
}

// GetAll retrieves all fuel logs ordered newest-first by date then time.
func (r *FuelLogRepository) GetAll(ctx context.Context) ([]*domain.FuelLog, error) {
	query := `SELECT ` + fuelLogColumns + ` FROM fuel_logs ORDER BY log_date DESC, log_time DESC`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.FuelLog
	for rows.Next() {
		var log domain.FuelLog
		if err := rows.Scan(
			&log.ID,
			&log.Date,
			&log.Time,
			&log.Station,
			&log.Location,
			&log.Amount,
			&log.PricePerLiter,
			&log.Liters,
		); err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}

	return logs, rows.Err()
}

// Update updates an existing fuel log.
func (r *FuelLogRepository) Update(ctx context.Context, log *domain.FuelLog) error {
	query := `
		UPDATE fuel_logs
		SET log_date = $1, log_time = $2, station = $3, location = $4,
			amount = $5, price_per_liter = $6, liters = $7
		WHERE id = $8
	`

	result, err := r.q.ExecContext(ctx, query,
		log.Date,
		log.Time,
		log.Station,
		log.Location,
		log.Amount,
		log.PricePerLiter,
		log.Liters,
		log.ID,
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

// Delete removes a fuel log by ID.
func (r *FuelLogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM fuel_logs WHERE id = $1`, id)
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

// Ensure FuelLogRepository implements repository.FuelLogRepository.
var _ repository.FuelLogRepository = (*FuelLogRepository)(nil)
