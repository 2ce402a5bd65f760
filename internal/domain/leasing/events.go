package leasing

import (
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	EventTypeInvestmentStatusChanged = "InvestmentStatusChanged"
	EventTypeLeaseCreated            = "LeaseCreated"
	EventTypeLeaseStatusChanged      = "LeaseStatusChanged"
	EventTypeRentalPaymentScheduled  = "RentalPaymentScheduled"
	EventTypeRentalPaymentPaid       = "RentalPaymentPaid"
	EventTypeRentalPaymentOverdue    = "RentalPaymentOverdue"
)

// InvestmentStatusChangedEvent is raised on creation and on every status change
type InvestmentStatusChangedEvent struct {
	shared.BaseDomainEvent
	FromStatus InvestmentStatus `json:"from_status,omitempty"`
	ToStatus   InvestmentStatus `json:"to_status"`
}

// NewInvestmentStatusChangedEvent creates a new InvestmentStatusChangedEvent
func NewInvestmentStatusChangedEvent(inv *Investment, from InvestmentStatus) *InvestmentStatusChangedEvent {
	return &InvestmentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvestmentStatusChanged, "Investment", inv.ID),
		FromStatus:      from,
		ToStatus:        inv.Status,
	}
}

// LeaseCreatedEvent is raised when a lease is signed
type LeaseCreatedEvent struct {
	shared.BaseDomainEvent
	InvestmentID uuid.UUID `json:"investment_id"`
	TenantName   string    `json:"tenant_name"`
	RentalAmount int64     `json:"rental_amount"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// NewLeaseCreatedEvent creates a new LeaseCreatedEvent
func NewLeaseCreatedEvent(l *LeaseItem) *LeaseCreatedEvent {
	return &LeaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseCreated, "LeaseItem", l.ID),
		InvestmentID:    l.InvestmentID,
		TenantName:      l.Tenant.Name,
		RentalAmount:    l.RentalAmount,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
	}
}

// LeaseStatusChangedEvent is raised when a lease expires or is terminated
type LeaseStatusChangedEvent struct {
	shared.BaseDomainEvent
	InvestmentID uuid.UUID   `json:"investment_id"`
	FromStatus   LeaseStatus `json:"from_status"`
	ToStatus     LeaseStatus `json:"to_status"`
}

// NewLeaseStatusChangedEvent creates a new LeaseStatusChangedEvent
func NewLeaseStatusChangedEvent(l *LeaseItem, from LeaseStatus) *LeaseStatusChangedEvent {
	return &LeaseStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLeaseStatusChanged, "LeaseItem", l.ID),
		InvestmentID:    l.InvestmentID,
		FromStatus:      from,
		ToStatus:        l.Status,
	}
}

// RentalPaymentScheduledEvent is raised when rent for a month is scheduled
type RentalPaymentScheduledEvent struct {
	shared.BaseDomainEvent
	InvestmentID uuid.UUID `json:"investment_id"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Amount       int64     `json:"amount"`
}

// NewRentalPaymentScheduledEvent creates a new RentalPaymentScheduledEvent
func NewRentalPaymentScheduledEvent(p *RentalPayment) *RentalPaymentScheduledEvent {
	return &RentalPaymentScheduledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRentalPaymentScheduled, "RentalPayment", p.ID),
		InvestmentID:    p.InvestmentID,
		Year:            p.Year,
		Month:           p.Month,
		Amount:          p.Amount,
	}
}

// RentalPaymentPaidEvent is raised when rent is received
type RentalPaymentPaidEvent struct {
	shared.BaseDomainEvent
	InvestmentID uuid.UUID     `json:"investment_id"`
	Amount       int64         `json:"amount"`
	FromStatus   PaymentStatus `json:"from_status"`
	PaymentDate  time.Time     `json:"payment_date"`
}

// NewRentalPaymentPaidEvent creates a new RentalPaymentPaidEvent
func NewRentalPaymentPaidEvent(p *RentalPayment, from PaymentStatus) *RentalPaymentPaidEvent {
	e := &RentalPaymentPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRentalPaymentPaid, "RentalPayment", p.ID),
		InvestmentID:    p.InvestmentID,
		Amount:          p.Amount,
		FromStatus:      from,
	}
	if p.PaymentDate != nil {
		e.PaymentDate = *p.PaymentDate
	}
	return e
}

// RentalPaymentOverdueEvent is raised when the sweep flags unpaid rent
type RentalPaymentOverdueEvent struct {
	shared.BaseDomainEvent
	InvestmentID uuid.UUID `json:"investment_id"`
	Amount       int64     `json:"amount"`
	DueDate      time.Time `json:"due_date"`
}

// NewRentalPaymentOverdueEvent creates a new RentalPaymentOverdueEvent
func NewRentalPaymentOverdueEvent(p *RentalPayment) *RentalPaymentOverdueEvent {
	return &RentalPaymentOverdueEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRentalPaymentOverdue, "RentalPayment", p.ID),
		InvestmentID:    p.InvestmentID,
		Amount:          p.Amount,
		DueDate:         p.DueDate,
	}
}
