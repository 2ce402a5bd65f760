package cache

import (
	"context"
	"sync"
	"time"
)

type heldLock struct {
	token     string
	expiresAt time.Time
}

// InMemoryLocker implements Locker within one process.
// It suits single-instance deployments and tests.
type InMemoryLocker struct {
	mu    sync.Mutex
	locks map[string]heldLock
	now   func() time.Time
}

// NewInMemoryLocker creates an empty in-memory locker
func NewInMemoryLocker() *InMemoryLocker {
	return &InMemoryLocker{locks: make(map[string]heldLock), now: time.Now}
}

// TryLock takes key unless an unexpired holder owns it
func (l *InMemoryLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.locks[key]; ok && now.Before(held.expiresAt) {
		return nil, ErrLockHeld
	}
	lock := newLock(key, l.release)
	l.locks[key] = heldLock{token: lock.token, expiresAt: now.Add(ttl)}
	return lock, nil
}

func (l *InMemoryLocker) release(ctx context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if held, ok := l.locks[key]; ok && held.token == token {
		delete(l.locks, key)
	}
	return nil
}

var _ Locker = (*InMemoryLocker)(nil)
