package tests

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"wallet/internal/domain"
	"wallet/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	UpdateError error
	GetAllError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		copy := *t
		result = append(result, &copy)
	}
	// Newest first, like the real repository.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].StartTime > result[j].StartTime
	})
	return result, nil
}

func (m *MockTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[trip.ID]; !ok {
		return repository.ErrNotFound
	}
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockTripRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.trips, id)
	return nil
}

func (m *MockTripRepository) ExistsDuplicate(ctx context.Context, date time.Time, startTime string, distanceKM, fare float64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.trips {
		if t.Date.Equal(date) && t.StartTime == startTime && t.DistanceKM == distanceKM && t.Fare == fare {
			return true, nil
		}
	}
	return false, nil
}

// GetTrip returns trip for assertions.
func (m *MockTripRepository) GetTrip(id string) *domain.Trip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trips[id]
}

// CountTrips returns the number of trips.
func (m *MockTripRepository) CountTrips() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trips)
}

// ──────────────────────────────────────────────
// MOCK FUEL LOG REPOSITORY
// ──────────────────────────────────────────────

// MockFuelLogRepository is a mock implementation of FuelLogRepository.
type MockFuelLogRepository struct {
	mu   sync.RWMutex
	logs map[string]*domain.FuelLog

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	GetAllError error
}

// NewMockFuelLogRepository creates a new mock fuel log repository.
func NewMockFuelLogRepository() *MockFuelLogRepository {
	return &MockFuelLogRepository{
		logs: make(map[string]*domain.FuelLog),
	}
}

// AddFuelLog adds a fuel log to the mock repository.
func (m *MockFuelLogRepository) AddFuelLog(log *domain.FuelLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs[log.ID] = log
}

func (m *MockFuelLogRepository) Create(ctx context.Context, log *domain.FuelLog) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs[log.ID] = log
	return nil
}

func (m *MockFuelLogRepository) GetByID(ctx context.Context, id string) (*domain.FuelLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	log, ok := m.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *log
	return &copy, nil
}

func (m *MockFuelLogRepository) GetAll(ctx context.Context) ([]*domain.FuelLog, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.FuelLog, 0, len(m.logs))
	for _, l := range m.logs {
		copy := *l
		result = append(result, &copy)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].Time > result[j].Time
	})
	return result, nil
}

func (m *MockFuelLogRepository) Update(ctx context.Context, log *domain.FuelLog) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.logs[log.ID]; !ok {
		return repository.ErrNotFound
	}
	m.logs[log.ID] = log
	return nil
}

func (m *MockFuelLogRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.logs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.logs, id)
	return nil
}

// CountFuelLogs returns the number of fuel logs.
func (m *MockFuelLogRepository) CountFuelLogs() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.logs)
}

// ──────────────────────────────────────────────
// MOCK SETTINGS REPOSITORY
// ──────────────────────────────────────────────

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.Settings

	// Counters for verification
	SaveCallCount int32

	// Error injection
	SaveError error
}

// NewMockSettingsRepository creates a new mock settings repository.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

// SetSettings seeds the stored settings (for test setup).
func (m *MockSettingsRepository) SetSettings(settings domain.Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, repository.ErrNotFound
	}
	copy := *m.settings
	return &copy, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *settings
	m.settings = &copy
	return nil
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is a mock implementation of CacheStoreInterface.
type MockCacheStore struct {
	mu      sync.Mutex
	summary *domain.Summary
	balance *domain.WalletBalance

	// Counters for verification
	InvalidateCallCount int32
	SetSummaryCallCount int32
	SetBalanceCallCount int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{}
}

func (m *MockCacheStore) GetSummary(ctx context.Context) (*domain.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary, nil
}

func (m *MockCacheStore) SetSummary(ctx context.Context, summary *domain.Summary) error {
	atomic.AddInt32(&m.SetSummaryCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summary = summary
	return nil
}

func (m *MockCacheStore) GetBalance(ctx context.Context) (*domain.WalletBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance, nil
}

func (m *MockCacheStore) SetBalance(ctx context.Context, balance *domain.WalletBalance) error {
	atomic.AddInt32(&m.SetBalanceCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance = balance
	return nil
}

func (m *MockCacheStore) Invalidate(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summary = nil
	m.balance = nil
	return nil
}

// HasCachedSummary reports whether a summary is cached (for assertions).
func (m *MockCacheStore) HasCachedSummary() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary != nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu     sync.Mutex
	expiry time.Time

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error

	// Force lock failure
	ForceAcquireFailure bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{}
}

func (m *MockLockStore) AcquireRecalcLock(ctx context.Context, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	if m.ForceAcquireFailure {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if time.Now().Before(m.expiry) {
		return false, nil // Lock still held.
	}
	m.expiry = time.Now().Add(ttl)
	return true, nil
}

func (m *MockLockStore) ReleaseRecalcLock(ctx context.Context) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiry = time.Time{}
	return nil
}

// IsLocked reports whether the lock is held (for assertions).
func (m *MockLockStore) IsLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Now().Before(m.expiry)
}

// ──────────────────────────────────────────────
// HELPER ERRORS
// ──────────────────────────────────────────────

var (
	ErrMockDBConstraint = errors.New("mock: unique constraint violation")
	ErrMockTimeout      = errors.New("mock: operation timeout")
)
