package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"wallet/internal/domain"
)

// CacheStore caches computed wallet aggregates in Redis. The database
// remains the source of truth; every trip, fuel log, or settings mutation
// invalidates the cache so the next read recomputes from the full lists.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	SummaryCacheTTL = 60 * time.Second
	BalanceCacheTTL = 30 * time.Second
)

// Cache keys
const (
	summaryCacheKey = "cache:wallet:summary"
	balanceCacheKey = "cache:wallet:balance"
)

// GetSummary retrieves the cached summary. Returns nil on cache miss.
func (s *CacheStore) GetSummary(ctx context.Context) (*domain.Summary, error) {
	data, err := s.client.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var summary domain.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetSummary stores the summary in cache.
func (s *CacheStore) SetSummary(ctx context.Context, summary *domain.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, summaryCacheKey, data, SummaryCacheTTL).Err()
}

// GetBalance retrieves the cached wallet balance. Returns nil on cache miss.
func (s *CacheStore) GetBalance(ctx context.Context) (*domain.WalletBalance, error) {
	data, err := s.client.Get(ctx, balanceCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var balance domain.WalletBalance
	if err := json.Unmarshal(data, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// SetBalance stores the wallet balance in cache.
func (s *CacheStore) SetBalance(ctx context.Context, balance *domain.WalletBalance) error {
	data, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, balanceCacheKey, data, BalanceCacheTTL).Err()
}

// Invalidate drops all cached aggregates.
func (s *CacheStore) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, summaryCacheKey, balanceCacheKey).Err()
}
