package leasing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// maxRecordAttempts bounds reload-and-retry when a payment changes
	// underneath RecordPayment
	maxRecordAttempts = 3
	// maxRangeMonths bounds how many months ScheduleRange walks
	maxRangeMonths = 120
)

// PaymentTracker schedules monthly rent and follows it to paid or overdue
type PaymentTracker struct {
	scope     uow.TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
	batchSize int
}

// NewPaymentTracker creates a new PaymentTracker
func NewPaymentTracker(scope uow.TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *PaymentTracker {
	return &PaymentTracker{
		scope:     scope,
		publisher: publisher,
		logger:    logger,
		now:       shared.Now,
		batchSize: DefaultSweepBatchSize,
	}
}

// SetClock replaces the time source used to validate payment dates
func (t *PaymentTracker) SetClock(now func() time.Time) {
	t.now = now
}

// SetBatchSize sets how many payments SweepOverdue loads per round
func (t *PaymentTracker) SetBatchSize(n int) {
	if n > 0 {
		t.batchSize = n
	}
}

// ScheduleForPeriod creates the payment of one month. The amount is the sum
// of the rents of the leases covering the month.
func (t *PaymentTracker) ScheduleForPeriod(ctx context.Context, investmentID uuid.UUID, req SchedulePaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "rental_payment", "schedule",
		telemetry.SpanAttrInvestmentID, investmentID,
		telemetry.SpanAttrPeriod, fmt.Sprintf("%04d-%02d", req.Year, req.Month),
	)
	defer span.End()

	period, err := valueobject.NewMonthPeriod(req.Year, req.Month)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, err.Error())
	}
	var due *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		d, err := parseDate("due_date", *req.DueDate)
		if err != nil {
			return nil, err
		}
		due = &d
	}

	var payment *leasing.RentalPayment
	var events uow.Events
	err = t.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		payment, err = t.schedule(ctx, repos, investmentID, period, due)
		if err != nil {
			return err
		}
		events.Collect(payment)
		return nil
	})
	if err != nil {
		if shared.IsCode(err, shared.CodeDuplicatePeriod) {
			t.logger.Warn("Duplicate rental payment rejected",
				zap.String("investment_id", investmentID.String()),
				zap.String("period", period.String()),
			)
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, t.publisher, t.logger)
	t.logger.Info("Rental payment scheduled",
		zap.String("payment_id", payment.ID.String()),
		zap.String("period", period.String()),
		zap.Int64("amount", payment.Amount),
	)
	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// schedule checks for an existing payment and creates one inside repos' transaction
func (t *PaymentTracker) schedule(ctx context.Context, repos uow.Repositories, investmentID uuid.UUID, period valueobject.MonthPeriod, due *time.Time) (*leasing.RentalPayment, error) {
	if _, err := repos.Investments().FindByID(ctx, investmentID); err != nil {
		return nil, err
	}
	exists, err := repos.Payments().ExistsForPeriod(ctx, investmentID, period.Year, period.Month)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeDuplicatePeriod,
			fmt.Sprintf("A rental payment for %s already exists", period))
	}
	leases, err := repos.Leases().FindByInvestment(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	payment, err := leasing.NewRentalPayment(investmentID, period, leases, due)
	if err != nil {
		return nil, err
	}
	if err := repos.Payments().Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ScheduleRange schedules every month from req.From to req.To that has no
// payment yet. Months without a covering lease are reported as skipped.
func (t *PaymentTracker) ScheduleRange(ctx context.Context, investmentID uuid.UUID, req ScheduleRangeRequest) (*ScheduleRangeResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "rental_payment", "schedule_range",
		telemetry.SpanAttrInvestmentID, investmentID, "from", req.From, "to", req.To)
	defer span.End()

	from, err := parseMonth("from", req.From)
	if err != nil {
		return nil, err
	}
	to, err := parseMonth("to", req.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, shared.NewDomainError(shared.CodeInvalidDateRange, "Range end precedes range start")
	}

	resp := &ScheduleRangeResponse{Created: []PaymentResponse{}, Skipped: []SkippedPeriod{}}
	var events uow.Events
	err = t.scope.Execute(ctx, func(repos uow.Repositories) error {
		months := 0
		for p := from; !to.Before(p); p = p.Next() {
			if months++; months > maxRangeMonths {
				return shared.NewDomainError(shared.CodeInvalidDateRange,
					fmt.Sprintf("Range cannot exceed %d months", maxRangeMonths))
			}
			payment, err := t.schedule(ctx, repos, investmentID, p, nil)
			switch {
			case err == nil:
				events.Collect(payment)
				resp.Created = append(resp.Created, ToPaymentResponse(payment))
			case shared.IsCode(err, shared.CodeDuplicatePeriod), shared.IsCode(err, shared.CodeNoActiveLease):
				var de *shared.DomainError
				if errors.As(err, &de) {
					resp.Skipped = append(resp.Skipped, SkippedPeriod{Period: p.String(), Reason: de.Code})
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Publish(ctx, t.publisher, t.logger)
	t.logger.Info("Rental payments scheduled for range",
		zap.String("investment_id", investmentID.String()),
		zap.Int("created", len(resp.Created)),
		zap.Int("skipped", len(resp.Skipped)),
	)
	return resp, nil
}

// RecordPayment settles a pending or overdue payment. When a concurrent
// overdue sweep wins the version race the payment is reloaded and settled
// again, since overdue to paid is legal.
func (t *PaymentTracker) RecordPayment(ctx context.Context, paymentID uuid.UUID, req RecordPaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "rental_payment", "record",
		telemetry.SpanAttrPaymentID, paymentID, "method", req.Method)
	defer span.End()

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	var payment *leasing.RentalPayment
	var events uow.Events
	for attempt := 1; ; attempt++ {
		now := t.now()
		err = t.scope.Execute(ctx, func(repos uow.Repositories) error {
			var err error
			payment, err = repos.Payments().FindByID(ctx, paymentID)
			if err != nil {
				return err
			}
			if err := payment.RecordPayment(valueobject.PaymentMethod(req.Method), date, now); err != nil {
				return err
			}
			if req.Note != "" {
				payment.Note = req.Note
			}
			return repos.Payments().SaveWithLock(ctx, payment)
		})
		if err == nil {
			break
		}
		if shared.IsCode(err, shared.CodeConcurrencyConflict) && attempt < maxRecordAttempts {
			t.logger.Warn("Rental payment changed while recording, retrying",
				zap.String("payment_id", paymentID.String()),
				zap.Int("attempt", attempt),
			)
			continue
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	events.Collect(payment)
	events.Publish(ctx, t.publisher, t.logger)
	t.logger.Info("Rental payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("method", string(payment.PaymentMethod)),
		zap.Int64("amount", payment.Amount),
	)
	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// Cancel voids a pending or overdue payment
func (t *PaymentTracker) Cancel(ctx context.Context, paymentID uuid.UUID, req CancelPaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "rental_payment", "cancel", telemetry.SpanAttrPaymentID, paymentID)
	defer span.End()

	var payment *leasing.RentalPayment
	err := t.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		payment, err = repos.Payments().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if err := payment.Cancel(req.Reason); err != nil {
			return err
		}
		return repos.Payments().SaveWithLock(ctx, payment)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	t.logger.Info("Rental payment cancelled", zap.String("payment_id", payment.ID.String()))
	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// GetByID returns a payment
func (t *PaymentTracker) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := t.scope.Payments().FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// ListByInvestment returns the payments of an investment
func (t *PaymentTracker) ListByInvestment(ctx context.Context, investmentID uuid.UUID) ([]PaymentResponse, error) {
	if _, err := t.scope.Investments().FindByID(ctx, investmentID); err != nil {
		return nil, err
	}
	payments, err := t.scope.Payments().FindByInvestment(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out, nil
}

// Summary totals an investment's payments by status
func (t *PaymentTracker) Summary(ctx context.Context, investmentID uuid.UUID) (*PaymentSummaryResponse, error) {
	if _, err := t.scope.Investments().FindByID(ctx, investmentID); err != nil {
		return nil, err
	}
	payments, err := t.scope.Payments().FindByInvestment(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	sum := leasing.Summarize(payments)
	resp := &PaymentSummaryResponse{
		InvestmentID: investmentID,
		Counts:       make(map[string]int, len(sum.Counts)),
		Totals:       make(map[string]int64, len(sum.Totals)),
	}
	for status, n := range sum.Counts {
		resp.Counts[string(status)] = n
	}
	for status, total := range sum.Totals {
		resp.Totals[string(status)] = total
		if status.IsOpen() {
			resp.Outstanding += total
		}
	}
	resp.Received = sum.Totals[leasing.PaymentStatusPaid]
	return resp, nil
}

// SweepOverdue flips pending payments whose due date has passed to overdue
// and returns how many it flipped. Each row is updated only while it is still
// pending at the version it was read with, so a payment recorded meanwhile
// stays paid.
func (t *PaymentTracker) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "rental_payment", "sweep_overdue")
	defer span.End()

	cutoff := valueobject.StartOfDay(now)
	flipped := 0
	for {
		batch, err := t.scope.Payments().FindPendingDueBefore(ctx, cutoff, t.batchSize)
		if err != nil {
			telemetry.RecordError(span, err)
			return flipped, err
		}
		changed := 0
		var events uow.Events
		for i := range batch {
			payment := &batch[i]
			if !payment.MarkOverdue(now) {
				continue
			}
			ok, err := t.scope.Payments().MarkOverdueIfPending(ctx, payment)
			if err != nil {
				telemetry.RecordError(span, err)
				return flipped, err
			}
			if !ok {
				t.logger.Debug("Rental payment changed during sweep, skipping",
					zap.String("payment_id", payment.ID.String()))
				continue
			}
			events.Collect(payment)
			changed++
		}
		events.Publish(ctx, t.publisher, t.logger)
		flipped += changed
		if len(batch) < t.batchSize || changed == 0 {
			break
		}
	}

	telemetry.SetAttributes(span, "overdue", flipped)
	if flipped > 0 {
		t.logger.Info("Marked rental payments overdue", zap.Int("count", flipped))
	}
	return flipped, nil
}

func parseMonth(field, value string) (valueobject.MonthPeriod, error) {
	t, err := time.ParseInLocation("2006-01", value, valueobject.Location)
	if err != nil {
		return valueobject.MonthPeriod{}, shared.NewDomainError(shared.CodeInvalidInput, field+" must be YYYY-MM")
	}
	return valueobject.MonthPeriodOf(t), nil
}
