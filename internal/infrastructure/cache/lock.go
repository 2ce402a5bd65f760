// Package cache provides the distributed lock that keeps periodic sweeps
// from running on two instances at once.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrLockHeld is returned when another holder owns the lock
var ErrLockHeld = errors.New("lock is held by another owner")

// Locker acquires named locks that expire after a TTL
type Locker interface {
	// TryLock acquires key without waiting. It returns ErrLockHeld when the
	// key is owned by someone else.
	TryLock(ctx context.Context, key string, ttl time.Duration) (*Lock, error)
}

// Lock is an acquired lock. Release only removes the key while this holder
// still owns it, so an expired lock re-acquired elsewhere is left alone.
type Lock struct {
	Key     string
	token   string
	release func(ctx context.Context, key, token string) error
}

func newLock(key string, release func(ctx context.Context, key, token string) error) *Lock {
	return &Lock{Key: key, token: uuid.NewString(), release: release}
}

// Release gives the lock up
func (l *Lock) Release(ctx context.Context) error {
	return l.release(ctx, l.Key, l.token)
}
