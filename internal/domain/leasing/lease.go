package leasing

import (
	"fmt"
	"strings"
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// LeaseStatus represents the lifecycle of a lease
type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

// IsValid checks if the status is known
func (s LeaseStatus) IsValid() bool {
	return s == LeaseStatusActive || s == LeaseStatusExpired || s == LeaseStatusTerminated
}

// TenantInfo identifies the lessee
type TenantInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
}

// LeaseTerm is the negotiated period and monthly rent of a lease
type LeaseTerm struct {
	StartDate    time.Time
	EndDate      time.Time
	RentalAmount int64
}

// LeaseItem is one tenant's lease of an investment
type LeaseItem struct {
	shared.BaseAggregateRoot
	InvestmentID      uuid.UUID
	Tenant            TenantInfo
	StartDate         time.Time
	EndDate           time.Time
	RentalAmount      int64
	Status            LeaseStatus
	TerminationDate   *time.Time
	TerminatedAt      *time.Time
	ProfitSharingNote string
}

// NewLeaseItem signs a lease against an active investment
func NewLeaseItem(inv *Investment, tenant TenantInfo, term LeaseTerm, note string) (*LeaseItem, error) {
	if inv == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInvestmentState, "Investment does not exist")
	}
	if !inv.IsActive() {
		return nil, shared.NewDomainError(shared.CodeInvalidInvestmentState,
			fmt.Sprintf("Cannot lease investment in %s status", inv.Status))
	}
	start := valueobject.StartOfDay(term.StartDate)
	end := valueobject.StartOfDay(term.EndDate)
	if term.StartDate.IsZero() || term.EndDate.IsZero() || !start.Before(end) {
		return nil, shared.NewDomainError(shared.CodeInvalidDateRange, "Lease start date must be before end date")
	}
	if term.RentalAmount <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Rental amount must be positive")
	}
	tenant.Name = strings.TrimSpace(tenant.Name)
	if tenant.Name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Tenant name is required")
	}

	l := &LeaseItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvestmentID:      inv.ID,
		Tenant:            tenant,
		StartDate:         start,
		EndDate:           end,
		RentalAmount:      term.RentalAmount,
		Status:            LeaseStatusActive,
		ProfitSharingNote: note,
	}
	l.AddDomainEvent(NewLeaseCreatedEvent(l))
	return l, nil
}

// Terminate ends an active lease early, effective on the given day
func (l *LeaseItem) Terminate(effectiveDate time.Time) error {
	if l.Status != LeaseStatusActive {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot terminate lease in %s status", l.Status))
	}
	effective := valueobject.StartOfDay(effectiveDate)
	if effective.Before(l.StartDate) {
		return shared.NewDomainError(shared.CodeInvalidDateRange, "Termination date cannot precede lease start")
	}
	now := shared.Now()
	l.Status = LeaseStatusTerminated
	l.TerminationDate = &effective
	l.TerminatedAt = &now
	l.Touch()
	l.AddDomainEvent(NewLeaseStatusChangedEvent(l, LeaseStatusActive))
	return nil
}

// Expire marks an active lease whose end date has passed as expired.
// It returns false and changes nothing for any other lease.
func (l *LeaseItem) Expire(now time.Time) bool {
	if l.Status != LeaseStatusActive || !now.After(valueobject.EndOfDay(l.EndDate)) {
		return false
	}
	l.Status = LeaseStatusExpired
	l.Touch()
	l.AddDomainEvent(NewLeaseStatusChangedEvent(l, LeaseStatusActive))
	return true
}

// Window returns the days rent accrues under the lease. An early
// termination cuts the window off the day before the effective date.
func (l *LeaseItem) Window() valueobject.DateWindow {
	end := l.EndDate
	if l.TerminationDate != nil {
		cut := l.TerminationDate.AddDate(0, 0, -1)
		if cut.Before(end) {
			end = cut
		}
	}
	return valueobject.DateWindow{Start: l.StartDate, End: &end}
}

// Covers reports whether the lease accrues rent in any day of the period
func (l *LeaseItem) Covers(p valueobject.MonthPeriod) bool {
	w := l.Window()
	if w.End.Before(w.Start) {
		return false
	}
	last := p.LastDay()
	return w.Overlaps(valueobject.DateWindow{Start: p.FirstDay(), End: &last})
}
