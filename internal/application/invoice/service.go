// Package invoice holds the use cases for issuing, rendering and printing the
// documents of paid rental payments.
package invoice

import (
	"context"
	"time"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxIssueAttempts = 3

// Service issues and manages invoices
type Service struct {
	scope     uow.TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new invoice Service
func NewService(scope uow.TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *Service {
	return &Service{scope: scope, publisher: publisher, logger: logger, now: shared.Now}
}

// SetClock replaces the time source
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Issue creates the single invoice of a paid payment. Auto numbers are
// reserved before the transaction, so a failed issue leaves a gap in the
// sequence rather than reusing a number.
func (s *Service) Issue(ctx context.Context, paymentID uuid.UUID, req IssueInvoiceRequest) (*InvoiceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", "issue",
		telemetry.SpanAttrPaymentID, paymentID, "type", req.Type)
	defer span.End()

	t := invoice.Type(req.Type)
	if !t.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown invoice type "+req.Type)
	}
	payment, err := s.scope.Payments().FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != leasing.PaymentStatusPaid {
		return nil, shared.NewDomainError(shared.CodePaymentNotPaid, "Only paid rental payments can be invoiced")
	}
	if err := s.ensureNotInvoiced(ctx, paymentID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	manual := req.InvoiceNumber != ""
	var inv *invoice.Invoice
	var events uow.Events
	for attempt := 1; ; attempt++ {
		issuedAt := s.now()
		number := req.InvoiceNumber
		if !manual {
			number, err = s.nextNumber(ctx, t, issuedAt.In(valueobject.Location).Year())
			if err != nil {
				telemetry.RecordError(span, err)
				return nil, err
			}
		}

		err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
			payment, err := repos.Payments().FindByID(ctx, paymentID)
			if err != nil {
				return err
			}
			inv, err = invoice.NewInvoice(payment, invoice.BuyerInfo{Name: req.BuyerName, TaxID: req.BuyerTaxID}, t, number, issuedAt)
			if err != nil {
				return err
			}
			taken, err := repos.Invoices().ExistsByNumber(ctx, inv.InvoiceNumber)
			if err != nil {
				return err
			}
			if taken {
				return shared.NewDomainError(shared.CodeDuplicateCode, "Invoice number "+inv.InvoiceNumber+" is already used")
			}
			if err := repos.Invoices().Create(ctx, inv); err != nil {
				return err
			}
			events.Collect(inv)
			return nil
		})
		if err == nil {
			break
		}
		if !manual && shared.IsCode(err, shared.CodeDuplicateCode) && attempt < maxIssueAttempts {
			s.logger.Warn("Invoice number collided, retrying with a new number",
				zap.String("invoice_number", number),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if shared.IsCode(err, shared.CodeAlreadyInvoiced) || shared.IsCode(err, shared.CodeDuplicateCode) {
			s.logger.Warn("Invoice rejected",
				zap.String("payment_id", paymentID.String()),
				zap.Error(err),
			)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Invoice issued",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("type", string(inv.Type)),
		zap.Int64("amount", inv.Amount),
	)
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

func (s *Service) ensureNotInvoiced(ctx context.Context, paymentID uuid.UUID) error {
	existing, err := s.scope.Invoices().FindByPayment(ctx, paymentID)
	if err == nil && existing != nil {
		return shared.NewDomainError(shared.CodeAlreadyInvoiced,
			"Payment already has invoice "+existing.InvoiceNumber)
	}
	if err != nil && !shared.IsCode(err, shared.CodeNotFound) {
		return err
	}
	return nil
}

func (s *Service) nextNumber(ctx context.Context, t invoice.Type, year int) (string, error) {
	scope := invoice.NumberScope(t, year)
	seq, err := s.scope.Sequences().Reserve(ctx, scope, nil)
	if err != nil {
		return "", err
	}
	number, err := invoice.FormatNumber(t, year, seq)
	if err != nil {
		s.logger.Warn("Invoice sequence exhausted", zap.String("scope", scope), zap.Int64("value", seq))
		return "", err
	}
	return number, nil
}

// Render lays out one copy of an invoice for printing
func (s *Service) Render(ctx context.Context, id uuid.UUID, copyName string) (*invoice.Rendered, error) {
	c := invoice.Copy(copyName)
	if !c.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "copy must be one of stub, receipt, accounting")
	}
	inv, err := s.scope.Invoices().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rendered, err := invoice.Render(inv, c)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, err.Error())
	}
	return &rendered, nil
}

// MarkPrinted records that a copy of the invoice was printed
func (s *Service) MarkPrinted(ctx context.Context, id uuid.UUID, req PrintInvoiceRequest) (*InvoiceResponse, error) {
	return s.update(ctx, id, "print", func(inv *invoice.Invoice) error {
		return inv.MarkPrinted(invoice.Copy(req.Copy))
	})
}

// Void cancels an invoice that has not been printed
func (s *Service) Void(ctx context.Context, id uuid.UUID, req VoidInvoiceRequest) (*InvoiceResponse, error) {
	return s.update(ctx, id, "void", func(inv *invoice.Invoice) error {
		return inv.Void(req.Reason)
	})
}

func (s *Service) update(ctx context.Context, id uuid.UUID, method string, fn func(*invoice.Invoice) error) (*InvoiceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", method, telemetry.SpanAttrInvoiceID, id)
	defer span.End()

	var inv *invoice.Invoice
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		inv, err = repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}
		version := inv.Version
		if err := fn(inv); err != nil {
			return err
		}
		if inv.Version == version {
			return nil
		}
		return repos.Invoices().SaveWithLock(ctx, inv)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Invoice updated",
		zap.String("invoice_id", id.String()),
		zap.String("action", method),
		zap.String("status", string(inv.Status)),
	)
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// GetByID returns an invoice
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.scope.Invoices().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// GetByPayment returns the invoice of a payment
func (s *Service) GetByPayment(ctx context.Context, paymentID uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.scope.Invoices().FindByPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}
