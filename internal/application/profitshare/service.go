// Package profitshare holds the use cases that turn paid rent into member
// profits under an investment's profit-sharing standards.
package profitshare

import (
	"context"
	"time"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages standards and profit distributions
type Service struct {
	scope     uow.TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new profit-sharing Service
func NewService(scope uow.TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *Service {
	return &Service{scope: scope, publisher: publisher, logger: logger, now: shared.Now}
}

// SetClock replaces the time source
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// AddStandard adds a standard to an investment. The investment row is locked
// while the existing windows are checked so two overlapping standards cannot
// be added concurrently.
func (s *Service) AddStandard(ctx context.Context, investmentID uuid.UUID, req CreateStandardRequest) (*StandardResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "profitshare", "add_standard", telemetry.SpanAttrInvestmentID, investmentID)
	defer span.End()

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		e, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		end = &e
	}
	standard, err := profitshare.NewStandard(profitshare.StandardParams{
		InvestmentID: investmentID,
		Type:         profitshare.StandardType(req.Type),
		Value:        req.Value,
		MinAmount:    req.MinAmount,
		MaxAmount:    req.MaxAmount,
		StartDate:    start,
		EndDate:      end,
		Description:  req.Description,
	})
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := repos.Investments().FindByIDForUpdate(ctx, investmentID); err != nil {
			return err
		}
		existing, err := repos.Standards().FindByInvestment(ctx, investmentID)
		if err != nil {
			return err
		}
		if err := profitshare.EnsureNoOverlap(existing, standard); err != nil {
			return err
		}
		return repos.Standards().Create(ctx, standard)
	})
	if err != nil {
		if shared.IsCode(err, shared.CodeOverlappingStandards) {
			s.logger.Warn("Standard rejected, window overlaps an existing one",
				zap.String("investment_id", investmentID.String()),
				zap.String("start_date", req.StartDate),
			)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Profit sharing standard added",
		zap.String("standard_id", standard.ID.String()),
		zap.String("investment_id", investmentID.String()),
		zap.String("type", req.Type),
	)
	resp := ToStandardResponse(standard)
	return &resp, nil
}

// ListStandards returns an investment's standards by start date
func (s *Service) ListStandards(ctx context.Context, investmentID uuid.UUID) ([]StandardResponse, error) {
	if _, err := s.scope.Investments().FindByID(ctx, investmentID); err != nil {
		return nil, err
	}
	standards, err := s.scope.Standards().FindByInvestment(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	out := make([]StandardResponse, len(standards))
	for i := range standards {
		out[i] = ToStandardResponse(&standards[i])
	}
	return out, nil
}

// Distribute computes a paid payment's profit share and splits it across
// members. A payment is distributed at most once.
func (s *Service) Distribute(ctx context.Context, paymentID uuid.UUID, req DistributeRequest) (*DistributionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "profitshare", "distribute",
		telemetry.SpanAttrPaymentID, paymentID, "members", len(req.MemberIDs))
	defer span.End()

	var (
		standard *profitshare.Standard
		profits  []*profitshare.MemberProfit
		total    int64
		events   uow.Events
	)
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		payment, err := repos.Payments().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status != leasing.PaymentStatusPaid {
			return shared.NewDomainError(shared.CodePaymentNotPaid, "Only paid rental payments can be distributed")
		}
		distributed, err := repos.Profits().ExistsForPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		if distributed {
			return shared.NewDomainError(shared.CodeAlreadyDistributed, "Profits for this payment were already distributed")
		}

		standard, err = s.resolveStandard(ctx, repos, payment, req.StandardID)
		if err != nil {
			return err
		}
		for _, id := range req.MemberIDs {
			if _, err := repos.Members().FindByID(ctx, id); err != nil {
				return err
			}
		}

		total, err = profitshare.ComputeShare(payment, standard, req.ManualAmount)
		if err != nil {
			return err
		}
		allocations, err := profitshare.Distribute(total, req.MemberIDs, req.MemberWeights)
		if err != nil {
			return err
		}
		profits, err = profitshare.NewMemberProfits(payment, standard, allocations)
		if err != nil {
			return err
		}
		if err := repos.Profits().CreateBatch(ctx, profits); err != nil {
			return err
		}
		for _, p := range profits {
			events.Collect(p)
		}
		return nil
	})
	if err != nil {
		if shared.IsCode(err, shared.CodeAlreadyDistributed) {
			s.logger.Warn("Payment already distributed", zap.String("payment_id", paymentID.String()))
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	telemetry.SetAttributes(span, telemetry.SpanAttrAmount, total)
	s.logger.Info("Profit distributed",
		zap.String("payment_id", paymentID.String()),
		zap.String("standard_id", standard.ID.String()),
		zap.Int64("total", total),
		zap.Int("members", len(profits)),
	)
	resp := &DistributionResponse{
		RentalPaymentID: paymentID,
		StandardID:      standard.ID,
		Total:           total,
		Profits:         make([]MemberProfitResponse, len(profits)),
	}
	for i, p := range profits {
		resp.Profits[i] = ToMemberProfitResponse(p)
	}
	return resp, nil
}

func (s *Service) resolveStandard(ctx context.Context, repos uow.Repositories, payment *leasing.RentalPayment, standardID *uuid.UUID) (*profitshare.Standard, error) {
	if standardID == nil {
		standards, err := repos.Standards().FindByInvestment(ctx, payment.InvestmentID)
		if err != nil {
			return nil, err
		}
		return profitshare.SelectStandard(standards, payment.Period())
	}
	standard, err := repos.Standards().FindByID(ctx, *standardID)
	if err != nil {
		return nil, err
	}
	if standard.InvestmentID != payment.InvestmentID {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Standard belongs to a different investment")
	}
	return standard, nil
}

// MarkProfitPaid records that a member's share was paid out
func (s *Service) MarkProfitPaid(ctx context.Context, profitID uuid.UUID) (*MemberProfitResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "profitshare", "mark_paid", "profit_id", profitID)
	defer span.End()

	var profit *profitshare.MemberProfit
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		profit, err = repos.Profits().FindByID(ctx, profitID)
		if err != nil {
			return err
		}
		if err := profit.MarkPaid(s.now()); err != nil {
			return err
		}
		return repos.Profits().SaveWithLock(ctx, profit)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Member profit paid out",
		zap.String("profit_id", profitID.String()),
		zap.String("member_id", profit.MemberID.String()),
		zap.Int64("amount", profit.Amount),
	)
	resp := ToMemberProfitResponse(profit)
	return &resp, nil
}

// ListByPayment returns the profits distributed from a payment
func (s *Service) ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]MemberProfitResponse, error) {
	if _, err := s.scope.Payments().FindByID(ctx, paymentID); err != nil {
		return nil, err
	}
	profits, err := s.scope.Profits().FindByPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return toProfitResponses(profits), nil
}

// ListByMember returns a member's profits
func (s *Service) ListByMember(ctx context.Context, memberID uuid.UUID) ([]MemberProfitResponse, error) {
	if _, err := s.scope.Members().FindByID(ctx, memberID); err != nil {
		return nil, err
	}
	profits, err := s.scope.Profits().FindByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toProfitResponses(profits), nil
}
