// Package leasing holds the use cases for investments, their leases and the
// monthly rent those leases produce.
package leasing

import (
	"context"
	"fmt"
	"time"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvestmentService manages investments and their lifecycle
type InvestmentService struct {
	scope     uow.TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(scope uow.TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *InvestmentService {
	return &InvestmentService{scope: scope, publisher: publisher, logger: logger}
}

// Create registers a pending investment for an existing company
func (s *InvestmentService) Create(ctx context.Context, req CreateInvestmentRequest) (*InvestmentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "investment", "create", telemetry.SpanAttrCompanyID, req.CompanyID)
	defer span.End()

	detail, err := req.assetDetail()
	if err != nil {
		return nil, err
	}
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

	inv, err := leasing.NewInvestment(req.CompanyID, req.Name, req.Amount, start, end, detail)
	if err != nil {
		return nil, err
	}
	inv.Description = req.Description

	var events uow.Events
	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		exists, err := repos.Companies().ExistsByID(ctx, req.CompanyID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewDomainError(shared.CodeNotFound, "Company not found")
		}
		if err := repos.Investments().Create(ctx, inv); err != nil {
			return err
		}
		events.Collect(inv)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Investment created",
		zap.String("investment_id", inv.ID.String()),
		zap.String("type", string(inv.Type())),
	)
	resp := ToInvestmentResponse(inv)
	return &resp, nil
}

// Activate opens a pending investment for leasing
func (s *InvestmentService) Activate(ctx context.Context, id uuid.UUID) (*InvestmentResponse, error) {
	return s.ChangeStatus(ctx, id, ChangeInvestmentStatusRequest{Status: string(leasing.InvestmentStatusActive)})
}

// ChangeStatus moves an investment to another lifecycle state
func (s *InvestmentService) ChangeStatus(ctx context.Context, id uuid.UUID, req ChangeInvestmentStatusRequest) (*InvestmentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "investment", "change_status",
		telemetry.SpanAttrInvestmentID, id, "status", req.Status)
	defer span.End()

	var inv *leasing.Investment
	var events uow.Events
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		inv, err = repos.Investments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := inv.TransitionTo(leasing.InvestmentStatus(req.Status)); err != nil {
			return err
		}
		if err := repos.Investments().SaveWithLock(ctx, inv); err != nil {
			return err
		}
		events.Collect(inv)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Investment status changed",
		zap.String("investment_id", inv.ID.String()),
		zap.String("status", string(inv.Status)),
	)
	resp := ToInvestmentResponse(inv)
	return &resp, nil
}

// GetByID returns an investment
func (s *InvestmentService) GetByID(ctx context.Context, id uuid.UUID) (*InvestmentResponse, error) {
	inv, err := s.scope.Investments().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvestmentResponse(inv)
	return &resp, nil
}

// ListByCompany returns a company's investments
func (s *InvestmentService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]InvestmentResponse, error) {
	investments, err := s.scope.Investments().FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentResponse, len(investments))
	for i := range investments {
		out[i] = ToInvestmentResponse(&investments[i])
	}
	return out, nil
}

// Delete removes an investment that nothing refers to yet. Leases, rental
// payments or profit-sharing standards block deletion with HAS_DEPENDENTS.
func (s *InvestmentService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "investment", "delete", telemetry.SpanAttrInvestmentID, id)
	defer span.End()

	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := repos.Investments().FindByIDForUpdate(ctx, id); err != nil {
			return err
		}
		leases, err := repos.Leases().CountByInvestment(ctx, id)
		if err != nil {
			return err
		}
		payments, err := repos.Payments().CountByInvestment(ctx, id)
		if err != nil {
			return err
		}
		standards, err := repos.Standards().FindByInvestment(ctx, id)
		if err != nil {
			return err
		}
		if leases > 0 || payments > 0 || len(standards) > 0 {
			return shared.NewDomainError(shared.CodeHasDependents,
				fmt.Sprintf("Investment has %d leases, %d rental payments and %d standards", leases, payments, len(standards)))
		}
		return repos.Investments().Delete(ctx, id)
	})
	if err != nil {
		if shared.IsCode(err, shared.CodeHasDependents) {
			s.logger.Warn("Investment deletion blocked by dependents", zap.String("investment_id", id.String()))
		}
		telemetry.RecordError(span, err)
		return err
	}
	s.logger.Info("Investment deleted", zap.String("investment_id", id.String()))
	return nil
}
