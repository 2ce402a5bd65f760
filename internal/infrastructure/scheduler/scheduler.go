// Package scheduler runs the periodic lease-expiry and overdue-payment sweeps.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/assetledger/backend/internal/application/leasing"
	"go.uber.org/zap"
)

var (
	ErrSweepStopped      = errors.New("sweep scheduler is stopped")
	ErrInvalidSweepTimer = errors.New("invalid sweep timing")
)

// SweepRunner performs one sweep. The application sweep service guards each
// run with a cross-instance lock.
type SweepRunner interface {
	Run(ctx context.Context) (*leasing.SweepResult, error)
}

// SweepSchedulerConfig holds sweep scheduler configuration
type SweepSchedulerConfig struct {
	// Enabled determines if the scheduler is active
	Enabled bool

	// Interval is the time between two sweeps
	Interval time.Duration

	// InitialDelay is the wait before the first sweep after start
	InitialDelay time.Duration

	// Timeout is the maximum time for one sweep
	Timeout time.Duration
}

// Validate checks the configuration
func (c SweepSchedulerConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidSweepTimer)
	}
	if c.InitialDelay < 0 {
		return fmt.Errorf("%w: initial delay cannot be negative", ErrInvalidSweepTimer)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidSweepTimer)
	}
	return nil
}

// SweepScheduler triggers sweeps on a fixed interval
type SweepScheduler struct {
	runner SweepRunner
	logger *zap.Logger
	config SweepSchedulerConfig

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	runMu     sync.Mutex
	lastRun   *leasing.SweepResult
}

// NewSweepScheduler creates a new sweep scheduler
func NewSweepScheduler(runner SweepRunner, logger *zap.Logger, config SweepSchedulerConfig) *SweepScheduler {
	return &SweepScheduler{
		runner: runner,
		logger: logger,
		config: config,
	}
}

// Start starts the sweep loop
func (s *SweepScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	if !s.config.Enabled {
		s.mu.Unlock()
		s.logger.Info("Sweep scheduler is disabled")
		return nil
	}
	if err := s.config.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("Sweep scheduler started",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("initial_delay", s.config.InitialDelay),
	)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep
func (s *SweepScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Sweep scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Sweep scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *SweepScheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	select {
	case <-ctx.Done():
		return
	case <-time.After(s.config.InitialDelay):
		s.execute(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Sweep loop stopping")
			return
		case <-ticker.C:
			s.execute(ctx)
		}
	}
}

// execute runs one sweep. Overlapping ticks within this process wait for
// the previous sweep instead of running concurrently.
func (s *SweepScheduler) execute(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	sweepCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	result, err := s.runner.Run(sweepCtx)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Error("Scheduled sweep failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}
	s.lastRun = result

	if result.Skipped {
		s.logger.Debug("Scheduled sweep skipped, lock held elsewhere")
		return
	}
	s.logger.Info("Scheduled sweep completed",
		zap.Duration("duration", duration),
		zap.Int("expired_leases", result.ExpiredLeases),
		zap.Int("overdue_payments", result.OverduePayments),
	)
}

// TriggerImmediateSweep runs a sweep now without waiting for the next tick
func (s *SweepScheduler) TriggerImmediateSweep(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSweepStopped
	}
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info("Triggering immediate sweep")
	go func() {
		defer s.wg.Done()
		s.execute(ctx)
	}()
	return nil
}

// LastRun returns the result of the most recent successful sweep, if any
func (s *SweepScheduler) LastRun() *leasing.SweepResult {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.lastRun
}

// IsRunning returns whether the scheduler is running
func (s *SweepScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}
