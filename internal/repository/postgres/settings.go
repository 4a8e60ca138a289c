package postgres

import (
	"context"
	"database/sql"
	"errors"

	"wallet/internal/domain"
	"wallet/internal/repository"
)

// SettingsRepository is a PostgreSQL implementation of repository.SettingsRepository.
// Settings live in a single row pinned to id = 1.
type SettingsRepository struct {
	q Querier
}

// NewSettingsRepository creates a new PostgreSQL settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{q: db}
}

// NewSettingsRepositoryWithTx creates a settings repository using a transaction.
func NewSettingsRepositoryWithTx(tx *sql.Tx) *SettingsRepository {
	return &SettingsRepository{q: tx}
}

// Get retrieves the settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT fuel_efficiency, petrol_price FROM settings WHERE id = 1`

	var settings domain.Settings
	err := r.q.QueryRowContext(ctx, query).Scan(&settings.FuelEfficiency, &settings.PetrolPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &settings, nil
}

// Save upserts the settings row.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	query := `
		INSERT INTO settings (id, fuel_efficiency, petrol_price)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET fuel_efficiency = EXCLUDED.fuel_efficiency, petrol_price = EXCLUDED.petrol_price
	`

	_, err := r.q.ExecContext(ctx, query, settings.FuelEfficiency, settings.PetrolPrice)
	return err
}

// Ensure SettingsRepository implements repository.SettingsRepository.
var _ repository.SettingsRepository = (*SettingsRepository)(nil)
