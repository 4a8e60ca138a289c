package repository

import (
	"context"

	"wallet/internal/domain"
)

// SettingsRepository defines persistence for the tracker settings.
// Settings are a single row; Get returns ErrNotFound until the first Save.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}
