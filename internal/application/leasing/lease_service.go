package leasing

import (
	"context"
	"time"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSweepBatchSize is how many rows a sweep loads per round
const DefaultSweepBatchSize = 200

// LeaseService signs, terminates and expires leases
type LeaseService struct {
	scope     uow.TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
	batchSize int
}

// NewLeaseService creates a new LeaseService
func NewLeaseService(scope uow.TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *LeaseService {
	return &LeaseService{scope: scope, publisher: publisher, logger: logger, batchSize: DefaultSweepBatchSize}
}

// SetBatchSize sets how many leases ExpireDue loads per round
func (s *LeaseService) SetBatchSize(n int) {
	if n > 0 {
		s.batchSize = n
	}
}

// Create signs a lease against an active investment. A missing or inactive
// investment fails with INVALID_INVESTMENT_STATE.
func (s *LeaseService) Create(ctx context.Context, investmentID uuid.UUID, req CreateLeaseRequest) (*LeaseResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "lease", "create", telemetry.SpanAttrInvestmentID, investmentID)
	defer span.End()

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	tenant := leasing.TenantInfo{
		Name:     req.Tenant.Name,
		Phone:    req.Tenant.Phone,
		Email:    req.Tenant.Email,
		IDNumber: req.Tenant.IDNumber,
	}
	term := leasing.LeaseTerm{StartDate: start, EndDate: end, RentalAmount: req.RentalAmount}

	var lease *leasing.LeaseItem
	var events uow.Events
	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		inv, err := repos.Investments().FindByID(ctx, investmentID)
		if shared.IsCode(err, shared.CodeNotFound) {
			inv = nil
		} else if err != nil {
			return err
		}
		lease, err = leasing.NewLeaseItem(inv, tenant, term, req.ProfitSharingNote)
		if err != nil {
			return err
		}
		if err := repos.Leases().Create(ctx, lease); err != nil {
			return err
		}
		events.Collect(lease)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Lease created",
		zap.String("lease_id", lease.ID.String()),
		zap.String("investment_id", investmentID.String()),
		zap.Int64("rental_amount", lease.RentalAmount),
	)
	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// Terminate ends an active lease on the effective date
func (s *LeaseService) Terminate(ctx context.Context, leaseID uuid.UUID, req TerminateLeaseRequest) (*LeaseResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "lease", "terminate", telemetry.SpanAttrLeaseID, leaseID)
	defer span.End()

	effective, err := parseDate("effective_date", req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	var lease *leasing.LeaseItem
	var events uow.Events
	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		lease, err = repos.Leases().FindByID(ctx, leaseID)
		if err != nil {
			return err
		}
		if err := lease.Terminate(effective); err != nil {
			return err
		}
		if err := repos.Leases().SaveWithLock(ctx, lease); err != nil {
			return err
		}
		events.Collect(lease)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Lease terminated",
		zap.String("lease_id", lease.ID.String()),
		zap.String("effective_date", valueobject.FormatDate(effective)),
	)
	resp := ToLeaseResponse(lease)
	return &resp, nil
}

// ListByInvestment returns the leases of an investment
func (s *LeaseService) ListByInvestment(ctx context.Context, investmentID uuid.UUID) ([]LeaseResponse, error) {
	if _, err := s.scope.Investments().FindByID(ctx, investmentID); err != nil {
		return nil, err
	}
	leases, err := s.scope.Leases().FindByInvestment(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	out := make([]LeaseResponse, len(leases))
	for i := range leases {
		out[i] = ToLeaseResponse(&leases[i])
	}
	return out, nil
}

// ExpireDue moves active leases whose end date has passed to expired and
// returns how many it moved. Terminated leases are never touched, and a
// lease changed concurrently is skipped, so running it twice is harmless.
func (s *LeaseService) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "lease", "expire_due")
	defer span.End()

	cutoff := valueobject.StartOfDay(now)
	expired := 0
	for {
		batch, err := s.scope.Leases().FindActiveEndedBefore(ctx, cutoff, s.batchSize)
		if err != nil {
			telemetry.RecordError(span, err)
			return expired, err
		}
		changed := 0
		var events uow.Events
		for i := range batch {
			lease := &batch[i]
			if !lease.Expire(now) {
				continue
			}
			err := s.scope.Leases().SaveWithLock(ctx, lease)
			if shared.IsCode(err, shared.CodeConcurrencyConflict) {
				s.logger.Debug("Lease changed during sweep, skipping", zap.String("lease_id", lease.ID.String()))
				continue
			}
			if err != nil {
				telemetry.RecordError(span, err)
				return expired, err
			}
			events.Collect(lease)
			changed++
		}
		events.Publish(ctx, s.publisher, s.logger)
		expired += changed
		if len(batch) < s.batchSize || changed == 0 {
			break
		}
	}

	telemetry.SetAttributes(span, "expired", expired)
	if expired > 0 {
		s.logger.Info("Expired leases", zap.Int("count", expired))
	}
	return expired, nil
}
