package leasing

import (
	"context"
	"errors"
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/cache"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// SweepLockKey is the lock that keeps two instances from sweeping at once
const SweepLockKey = "sweep"

// Sweep kinds reported to the recorder
const (
	SweepKindLeaseExpiry    = "lease_expiry"
	SweepKindPaymentOverdue = "payment_overdue"
)

// SweepRecorder receives the outcome of each sweep kind
type SweepRecorder interface {
	RecordSweep(ctx context.Context, kind string, changed int, elapsed time.Duration, err error)
}

// SweepService runs the periodic state sweeps under a distributed lock
type SweepService struct {
	leases   *LeaseService
	payments *PaymentTracker
	locker   cache.Locker
	recorder SweepRecorder
	lockTTL  time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewSweepService creates a new SweepService. recorder may be nil.
func NewSweepService(leases *LeaseService, payments *PaymentTracker, locker cache.Locker, recorder SweepRecorder, lockTTL time.Duration, logger *zap.Logger) *SweepService {
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}
	return &SweepService{
		leases:   leases,
		payments: payments,
		locker:   locker,
		recorder: recorder,
		lockTTL:  lockTTL,
		logger:   logger,
		now:      shared.Now,
	}
}

// SetClock replaces the time source the sweeps compare against
func (s *SweepService) SetClock(now func() time.Time) {
	s.now = now
}

// Run expires due leases and marks overdue payments. When another instance
// holds the sweep lock nothing runs and the result is marked skipped.
func (s *SweepService) Run(ctx context.Context) (*SweepResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "sweep", "run")
	defer span.End()

	now := s.now()
	result := &SweepResult{RanAt: now}

	lock, err := s.locker.TryLock(ctx, SweepLockKey, s.lockTTL)
	if errors.Is(err, cache.ErrLockHeld) {
		s.logger.Info("Sweep already running elsewhere, skipping")
		result.Skipped = true
		return result, nil
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("Failed to release sweep lock", zap.Error(err))
		}
	}()

	start := time.Now()
	result.ExpiredLeases, err = s.leases.ExpireDue(ctx, now)
	s.record(ctx, SweepKindLeaseExpiry, result.ExpiredLeases, time.Since(start), err)
	if err != nil {
		s.logger.Error("Lease expiry sweep failed", zap.Error(err))
		telemetry.RecordError(span, err)
		return result, err
	}

	start = time.Now()
	result.OverduePayments, err = s.payments.SweepOverdue(ctx, now)
	s.record(ctx, SweepKindPaymentOverdue, result.OverduePayments, time.Since(start), err)
	if err != nil {
		s.logger.Error("Overdue payment sweep failed", zap.Error(err))
		telemetry.RecordError(span, err)
		return result, err
	}

	s.logger.Info("Sweep completed",
		zap.Int("expired_leases", result.ExpiredLeases),
		zap.Int("overdue_payments", result.OverduePayments),
	)
	return result, nil
}

func (s *SweepService) record(ctx context.Context, kind string, changed int, elapsed time.Duration, err error) {
	if s.recorder != nil {
		s.recorder.RecordSweep(ctx, kind, changed, elapsed, err)
	}
}
