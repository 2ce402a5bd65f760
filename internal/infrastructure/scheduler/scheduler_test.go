package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/application/leasing"
	"github.com/assetledger/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRunner struct {
	calls   atomic.Int32
	err     error
	skipped bool
}

func (r *countingRunner) Run(ctx context.Context) (*leasing.SweepResult, error) {
	n := r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &leasing.SweepResult{ExpiredLeases: int(n), Skipped: r.skipped, RanAt: time.Now()}, nil
}

func fastConfig() SweepSchedulerConfig {
	return SweepSchedulerConfig{
		Enabled:      true,
		Interval:     20 * time.Millisecond,
		InitialDelay: time.Millisecond,
		Timeout:      time.Second,
	}
}

func TestSweepScheduler_RunsPeriodically(t *testing.T) {
	runner := &countingRunner{}
	s := NewSweepScheduler(runner, zap.NewNop(), fastConfig())

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Start(context.Background()), "starting twice is a no-op")

	testutil.AssertEventually(t, func() bool { return runner.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	ctx, cancel := testutil.ContextWithTimeout(t, time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.IsRunning())

	stopped := runner.calls.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, stopped, runner.calls.Load(), "no sweeps after stop")
	require.NotNil(t, s.LastRun())
}

func TestSweepScheduler_Disabled(t *testing.T) {
	runner := &countingRunner{}
	cfg := fastConfig()
	cfg.Enabled = false
	s := NewSweepScheduler(runner, zap.NewNop(), cfg)

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
	assert.ErrorIs(t, s.TriggerImmediateSweep(context.Background()), ErrSweepStopped)
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, runner.calls.Load())
	assert.NoError(t, s.Stop(context.Background()))
}

func TestSweepScheduler_InvalidConfig(t *testing.T) {
	cfg := fastConfig()
	cfg.Interval = 0
	s := NewSweepScheduler(&countingRunner{}, zap.NewNop(), cfg)
	assert.ErrorIs(t, s.Start(context.Background()), ErrInvalidSweepTimer)
	assert.False(t, s.IsRunning())
}

func TestSweepScheduler_TriggerImmediateSweep(t *testing.T) {
	runner := &countingRunner{skipped: true}
	cfg := fastConfig()
	cfg.InitialDelay = time.Hour
	cfg.Interval = time.Hour
	s := NewSweepScheduler(runner, zap.NewNop(), cfg)
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	require.NoError(t, s.TriggerImmediateSweep(context.Background()))
	assert.Eventually(t, func() bool { return runner.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		last := s.LastRun()
		return last != nil && last.Skipped
	}, time.Second, 5*time.Millisecond)
}

func TestSweepScheduler_FailuresKeepLooping(t *testing.T) {
	runner := &countingRunner{err: errors.New("database unavailable")}
	s := NewSweepScheduler(runner, zap.NewNop(), fastConfig())
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool { return runner.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	assert.Nil(t, s.LastRun())
}
