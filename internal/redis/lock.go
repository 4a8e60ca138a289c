package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const recalcLockKey = "lock:wallet:recalc"

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireRecalcLock attempts to acquire the lock guarding the full trip
// recalculation that follows a settings change.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireRecalcLock(ctx context.Context, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, recalcLockKey, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseRecalcLock releases the recalculation lock.
func (s *LockStore) ReleaseRecalcLock(ctx context.Context) error {
	return s.client.Del(ctx, recalcLockKey).Err()
}
