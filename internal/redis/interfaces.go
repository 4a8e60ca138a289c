package redis

import (
	"context"
	"time"

	"wallet/internal/domain"
)

// CacheStoreInterface defines the interface for wallet aggregate caching.
type CacheStoreInterface interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
	SetSummary(ctx context.Context, summary *domain.Summary) error
	GetBalance(ctx context.Context) (*domain.WalletBalance, error)
	SetBalance(ctx context.Context, balance *domain.WalletBalance) error
	Invalidate(ctx context.Context) error
}

// LockStoreInterface defines the interface for the recalculation lock.
type LockStoreInterface interface {
	AcquireRecalcLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleaseRecalcLock(ctx context.Context) error
}

// Ensure concrete types implement interfaces.
var (
	_ CacheStoreInterface = (*CacheStore)(nil)
	_ LockStoreInterface  = (*LockStore)(nil)
)
