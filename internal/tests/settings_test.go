package tests

import (
	"context"
	"errors"
	"testing"

	"wallet/internal/domain"
	"wallet/internal/service"
)

func TestSettings_CurrentReturnsDefaultsBeforeFirstSave(t *testing.T) {
	t.Parallel()

	settingsRepo := NewMockSettingsRepository()
	svc := service.NewSettingsService(nil, settingsRepo, NewMockTripRepository(), nil, nil, testDefaults)

	settings, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings != testDefaults {
		t.Errorf("got %+v, want the configured defaults %+v", settings, testDefaults)
	}
}

func TestSettings_CurrentReturnsStoredRow(t *testing.T) {
	t.Parallel()

	settingsRepo := NewMockSettingsRepository()
	stored := domain.Settings{FuelEfficiency: 18.0, PetrolPrice: 210.0}
	settingsRepo.SetSettings(stored)

	svc := service.NewSettingsService(nil, settingsRepo, NewMockTripRepository(), nil, nil, testDefaults)

	settings, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings != stored {
		t.Errorf("got %+v, want the stored settings %+v", settings, stored)
	}
}

func TestSettings_UpdateRejectsNonPositiveValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  service.UpdateSettingsRequest
		want error
	}{
		{"zero efficiency", service.UpdateSettingsRequest{FuelEfficiency: 0, PetrolPrice: 180}, service.ErrInvalidFuelEfficiency},
		{"negative efficiency", service.UpdateSettingsRequest{FuelEfficiency: -1, PetrolPrice: 180}, service.ErrInvalidFuelEfficiency},
		{"zero price", service.UpdateSettingsRequest{FuelEfficiency: 25, PetrolPrice: 0}, service.ErrInvalidPetrolPrice},
		{"negative price", service.UpdateSettingsRequest{FuelEfficiency: 25, PetrolPrice: -10}, service.ErrInvalidPetrolPrice},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			settingsRepo := NewMockSettingsRepository()
			svc := service.NewSettingsService(nil, settingsRepo, NewMockTripRepository(), nil, nil, testDefaults)

			_, err := svc.Update(context.Background(), c.req)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
			if settingsRepo.SaveCallCount != 0 {
				t.Error("invalid settings must not be saved")
			}
		})
	}
}

func TestSettings_UpdateBlockedWhileRecalcLockHeld(t *testing.T) {
	t.Parallel()

	lock := NewMockLockStore()
	lock.ForceAcquireFailure = true

	settingsRepo := NewMockSettingsRepository()
	svc := service.NewSettingsService(nil, settingsRepo, NewMockTripRepository(), lock, nil, testDefaults)

	_, err := svc.Update(context.Background(), service.UpdateSettingsRequest{FuelEfficiency: 20, PetrolPrice: 200})
	if !errors.Is(err, service.ErrRecalcInProgress) {
		t.Errorf("got %v, want ErrRecalcInProgress", err)
	}
	if settingsRepo.SaveCallCount != 0 {
		t.Error("settings must not be saved while the lock is held")
	}
}

func TestSettings_UpdatePropagatesLockError(t *testing.T) {
	t.Parallel()

	lock := NewMockLockStore()
	lock.AcquireError = ErrMockTimeout

	svc := service.NewSettingsService(nil, NewMockSettingsRepository(), NewMockTripRepository(), lock, nil, testDefaults)

	_, err := svc.Update(context.Background(), service.UpdateSettingsRequest{FuelEfficiency: 20, PetrolPrice: 200})
	if !errors.Is(err, ErrMockTimeout) {
		t.Errorf("got %v, want the lock error", err)
	}
}
