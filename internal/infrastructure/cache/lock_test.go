package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/assetledger/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRedisLocker(t *testing.T) (*miniredis.Miniredis, *RedisLocker) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisLockerWithClient(client, "")
}

func TestRedisLocker_TryLock(t *testing.T) {
	mr, locker := newTestRedisLocker(t)
	ctx := context.Background()

	lock, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists(defaultKeyPrefix+"sweep"))
	assert.Equal(t, time.Minute, mr.TTL(defaultKeyPrefix+"sweep"))

	_, err = locker.TryLock(ctx, "sweep", time.Minute)
	assert.ErrorIs(t, err, ErrLockHeld)

	require.NoError(t, lock.Release(ctx))
	assert.False(t, mr.Exists(defaultKeyPrefix+"sweep"))

	_, err = locker.TryLock(ctx, "sweep", time.Minute)
	assert.NoError(t, err)
}

func TestRedisLocker_ExpiredLockIsNotReleasedByOldHolder(t *testing.T) {
	mr, locker := newTestRedisLocker(t)
	ctx := context.Background()

	stale, err := locker.TryLock(ctx, "sweep", time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	fresh, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)

	require.NoError(t, stale.Release(ctx))
	assert.True(t, mr.Exists(defaultKeyPrefix+"sweep"), "stale holder must not delete the new lock")

	require.NoError(t, fresh.Release(ctx))
	assert.False(t, mr.Exists(defaultKeyPrefix+"sweep"))
}

func TestRedisLocker_ConnectionError(t *testing.T) {
	mr, locker := newTestRedisLocker(t)
	mr.Close()

	_, err := locker.TryLock(context.Background(), "sweep", time.Minute)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLockHeld)
}

func TestInMemoryLocker(t *testing.T) {
	locker := NewInMemoryLocker()
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	locker.now = func() time.Time { return now }
	ctx := context.Background()

	stale, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)

	_, err = locker.TryLock(ctx, "sweep", time.Minute)
	assert.ErrorIs(t, err, ErrLockHeld)

	_, err = locker.TryLock(ctx, "other", time.Minute)
	assert.NoError(t, err)

	now = now.Add(2 * time.Minute)
	fresh, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)

	require.NoError(t, stale.Release(ctx))
	_, err = locker.TryLock(ctx, "sweep", time.Minute)
	assert.ErrorIs(t, err, ErrLockHeld)

	require.NoError(t, fresh.Release(ctx))
	_, err = locker.TryLock(ctx, "sweep", time.Minute)
	assert.NoError(t, err)
}

func TestNewLocker(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	assert.IsType(t, &InMemoryLocker{}, NewLocker(ctx, config.RedisConfig{}, log))

	mr := miniredis.RunT(t)
	locker := NewLocker(ctx, config.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)}, log)
	require.IsType(t, &RedisLocker{}, locker)
	_ = locker.(*RedisLocker).Close()

	assert.IsType(t, &InMemoryLocker{}, NewLocker(ctx, config.RedisConfig{Host: "127.0.0.1", Port: 1}, log))
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	var port int
	_, err := fmt.Sscanf(mr.Port(), "%d", &port)
	require.NoError(t, err)
	return port
}

func TestRedisLocker_Ping(t *testing.T) {
	mr, locker := newTestRedisLocker(t)
	ctx := context.Background()

	assert.NoError(t, locker.Ping(ctx))

	mr.Close()
	assert.Error(t, locker.Ping(ctx))
}
