// Package fee holds the membership fee ledger use cases.
package fee

import (
	"context"
	"fmt"
	"time"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService raises, settles and reports membership fees
type LedgerService struct {
	scope     uow.TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(scope uow.TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		scope:     scope,
		publisher: publisher,
		logger:    logger,
		now:       shared.Now,
	}
}

// SetClock replaces the time source used for due and overdue checks
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateSetting adds an active fee setting
func (s *LedgerService) CreateSetting(ctx context.Context, req CreateFeeSettingRequest) (*FeeSettingResponse, error) {
	setting, err := fee.NewSetting(req.Name, req.Amount, fee.PeriodKind(req.Period), membership.Role(req.MemberRole))
	if err != nil {
		return nil, err
	}
	if err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		return repos.FeeSettings().Save(ctx, setting)
	}); err != nil {
		return nil, err
	}
	s.logger.Info("Fee setting created",
		zap.String("setting_id", setting.ID.String()),
		zap.String("period", string(setting.PeriodKind)),
		zap.Int64("amount", setting.Amount),
	)
	resp := ToFeeSettingResponse(setting)
	return &resp, nil
}

// ListSettings returns fee settings, optionally only active ones
func (s *LedgerService) ListSettings(ctx context.Context, activeOnly bool) ([]FeeSettingResponse, error) {
	settings, err := s.scope.FeeSettings().FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]FeeSettingResponse, len(settings))
	for i := range settings {
		out[i] = ToFeeSettingResponse(&settings[i])
	}
	return out, nil
}

// CreateFeeRecord raises the fee of a setting for one member and period.
// The amount is copied from the setting; a period that already has a record
// for the member fails with DUPLICATE_PERIOD.
func (s *LedgerService) CreateFeeRecord(ctx context.Context, req CreateFeeRecordRequest) (*FeeRecordResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "fee_ledger", "create_record",
		telemetry.SpanAttrMemberID, req.MemberID,
		telemetry.SpanAttrPeriod, req.Period,
	)
	defer span.End()

	now := s.now()
	var record *fee.Record
	var events uow.Events
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		member, err := repos.Members().FindByID(ctx, req.MemberID)
		if err != nil {
			return err
		}
		if member.IsDisabled() {
			return shared.NewDomainError(shared.CodeInvalidInput, "Cannot raise fees for a disabled member")
		}
		setting, err := repos.FeeSettings().FindByID(ctx, req.SettingID)
		if err != nil {
			return err
		}
		if setting.MemberRole != member.Role {
			return shared.NewDomainError(shared.CodeInvalidInput,
				fmt.Sprintf("Fee setting applies to %s members, not %s", setting.MemberRole, member.Role))
		}

		record, err = fee.NewRecord(member.ID, setting, req.Period, now)
		if err != nil {
			return err
		}
		exists, err := repos.FeeRecords().ExistsForPeriod(ctx, member.ID, record.Period)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeDuplicatePeriod,
				fmt.Sprintf("A fee record for %s already exists", record.Period))
		}
		if err := repos.FeeRecords().Create(ctx, record); err != nil {
			return err
		}
		events.Collect(record)
		return nil
	})
	if err != nil {
		if shared.IsCode(err, shared.CodeDuplicatePeriod) {
			s.logger.Warn("Duplicate fee record rejected",
				zap.String("member_id", req.MemberID.String()),
				zap.String("period", req.Period),
			)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Fee record created",
		zap.String("fee_record_id", record.ID.String()),
		zap.String("member_id", record.MemberID.String()),
		zap.String("period", record.Period),
		zap.Int64("amount", record.Amount),
	)
	resp := ToFeeRecordResponse(record, now)
	return &resp, nil
}

// MarkPaid settles a pending or overdue fee
func (s *LedgerService) MarkPaid(ctx context.Context, id uuid.UUID, req MarkFeePaidRequest) (*FeeRecordResponse, error) {
	paidDate, err := valueobject.ParseDate(req.PaidDate)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Paid date must be YYYY-MM-DD")
	}
	return s.update(ctx, id, "mark_paid", func(r *fee.Record, now time.Time) error {
		return r.MarkPaid(paidDate, valueobject.PaymentMethod(req.Method), now)
	})
}

// Cancel voids a pending or overdue fee
func (s *LedgerService) Cancel(ctx context.Context, id uuid.UUID, req CancelFeeRecordRequest) (*FeeRecordResponse, error) {
	return s.update(ctx, id, "cancel", func(r *fee.Record, now time.Time) error {
		return r.Cancel(req.Reason, now)
	})
}

func (s *LedgerService) update(ctx context.Context, id uuid.UUID, op string, apply func(*fee.Record, time.Time) error) (*FeeRecordResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "fee_ledger", op, telemetry.SpanAttrFeeRecordID, id)
	defer span.End()

	now := s.now()
	var record *fee.Record
	var events uow.Events
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		record, err = repos.FeeRecords().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(record, now); err != nil {
			return err
		}
		if err := repos.FeeRecords().SaveWithLock(ctx, record); err != nil {
			return err
		}
		events.Collect(record)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Fee record updated",
		zap.String("fee_record_id", record.ID.String()),
		zap.String("status", string(record.Status)),
	)
	resp := ToFeeRecordResponse(record, now)
	return &resp, nil
}

// GetByID returns a fee record with its status recomputed
func (s *LedgerService) GetByID(ctx context.Context, id uuid.UUID) (*FeeRecordResponse, error) {
	record, err := s.scope.FeeRecords().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToFeeRecordResponse(record, s.now())
	return &resp, nil
}

// ListByMember returns every fee of a member with recomputed statuses and
// the total still owed
func (s *LedgerService) ListByMember(ctx context.Context, memberID uuid.UUID) (*MemberFeesResponse, error) {
	if _, err := s.scope.Members().FindByID(ctx, memberID); err != nil {
		return nil, err
	}
	records, err := s.scope.FeeRecords().FindByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	resp := &MemberFeesResponse{
		MemberID:    memberID,
		Records:     make([]FeeRecordResponse, len(records)),
		Outstanding: fee.Outstanding(records, now),
	}
	for i := range records {
		resp.Records[i] = ToFeeRecordResponse(&records[i], now)
	}
	return resp, nil
}

// Outstanding sums the pending and overdue amounts of a member at now
func (s *LedgerService) Outstanding(ctx context.Context, memberID uuid.UUID) (int64, error) {
	records, err := s.scope.FeeRecords().FindByMember(ctx, memberID)
	if err != nil {
		return 0, err
	}
	return fee.Outstanding(records, s.now()), nil
}
