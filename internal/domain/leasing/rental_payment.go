package leasing

import (
	"fmt"
	"strings"
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PaymentStatus represents the lifecycle of a rental payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// IsValid checks if the status is known
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

// IsOpen returns true while the rent is still owed
func (s PaymentStatus) IsOpen() bool {
	return s == PaymentStatusPending || s == PaymentStatusOverdue
}

// DefaultDueDate is the due date of a period without an explicit one:
// the last calendar day of the month.
func DefaultDueDate(p valueobject.MonthPeriod) time.Time {
	return p.LastDay()
}

// RentalPayment is the rent owed on an investment for one calendar month
type RentalPayment struct {
	shared.BaseAggregateRoot
	InvestmentID   uuid.UUID
	Year           int
	Month          int
	Amount         int64
	LeaseStartDate time.Time
	DueDate        time.Time
	Status         PaymentStatus
	PaymentMethod  valueobject.PaymentMethod
	PaymentDate    *time.Time
	Note           string
	CancelReason   string
}

// Period returns the month the payment covers
func (p *RentalPayment) Period() valueobject.MonthPeriod {
	return valueobject.MonthPeriod{Year: p.Year, Month: p.Month}
}

// NewRentalPayment schedules the rent of period from the leases covering it.
// dueDate overrides the last-day-of-month default when set.
func NewRentalPayment(investmentID uuid.UUID, period valueobject.MonthPeriod, leases []LeaseItem, dueDate *time.Time) (*RentalPayment, error) {
	if investmentID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Investment ID cannot be empty")
	}
	if _, err := valueobject.NewMonthPeriod(period.Year, period.Month); err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, err.Error())
	}

	var amount int64
	var leaseStart time.Time
	for i := range leases {
		l := &leases[i]
		if l.InvestmentID != investmentID || !l.Covers(period) {
			continue
		}
		amount += l.RentalAmount
		if leaseStart.IsZero() || l.StartDate.Before(leaseStart) {
			leaseStart = l.StartDate
		}
	}
	if amount == 0 {
		return nil, shared.NewDomainError(shared.CodeNoActiveLease,
			fmt.Sprintf("No lease covers %s", period))
	}

	due := DefaultDueDate(period)
	if dueDate != nil {
		due = valueobject.StartOfDay(*dueDate)
		if due.Before(period.FirstDay()) {
			return nil, shared.NewDomainError(shared.CodeInvalidDateRange, "Due date cannot precede the billed month")
		}
	}

	p := &RentalPayment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvestmentID:      investmentID,
		Year:              period.Year,
		Month:             period.Month,
		Amount:            amount,
		LeaseStartDate:    leaseStart,
		DueDate:           due,
		Status:            PaymentStatusPending,
	}
	p.AddDomainEvent(NewRentalPaymentScheduledEvent(p))
	return p, nil
}

// RecordPayment settles an open payment. The payment date may not precede
// the lease start and may not lie after now.
func (p *RentalPayment) RecordPayment(method valueobject.PaymentMethod, date, now time.Time) error {
	if !p.Status.IsOpen() {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot record payment in %s status", p.Status))
	}
	if !method.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown payment method %q", method))
	}
	if valueobject.StartOfDay(date).Before(valueobject.StartOfDay(p.LeaseStartDate)) {
		return shared.NewDomainError(shared.CodeInvalidPaymentDate, "Payment date cannot precede the lease start")
	}
	if date.After(now) {
		return shared.NewDomainError(shared.CodeInvalidPaymentDate, "Payment date cannot be in the future")
	}
	from := p.Status
	p.Status = PaymentStatusPaid
	p.PaymentMethod = method
	p.PaymentDate = &date
	p.Touch()
	p.AddDomainEvent(NewRentalPaymentPaidEvent(p, from))
	return nil
}

// IsOverdueAt reports whether a pending payment has passed its due date
func (p *RentalPayment) IsOverdueAt(now time.Time) bool {
	return p.Status == PaymentStatusPending && now.After(valueobject.EndOfDay(p.DueDate))
}

// MarkOverdue flips a pending payment past its due date to overdue.
// It returns false and changes nothing for any other payment.
func (p *RentalPayment) MarkOverdue(now time.Time) bool {
	if !p.IsOverdueAt(now) {
		return false
	}
	p.Status = PaymentStatusOverdue
	p.Touch()
	p.AddDomainEvent(NewRentalPaymentOverdueEvent(p))
	return true
}

// Cancel voids an open payment
func (p *RentalPayment) Cancel(reason string) error {
	if !p.Status.IsOpen() {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot cancel payment in %s status", p.Status))
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Cancel reason is required")
	}
	p.Status = PaymentStatusCancelled
	p.CancelReason = reason
	p.Touch()
	return nil
}

// PaymentSummary totals payments of one investment by status
type PaymentSummary struct {
	Counts map[PaymentStatus]int   `json:"counts"`
	Totals map[PaymentStatus]int64 `json:"totals"`
}

// Summarize groups payments by status
func Summarize(payments []RentalPayment) PaymentSummary {
	s := PaymentSummary{
		Counts: make(map[PaymentStatus]int),
		Totals: make(map[PaymentStatus]int64),
	}
	for i := range payments {
		s.Counts[payments[i].Status]++
		s.Totals[payments[i].Status] += payments[i].Amount
	}
	return s
}
