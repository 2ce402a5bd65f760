package profitshare

import (
	"fmt"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StandardType selects how a standard turns rent into a profit share
type StandardType string

const (
	StandardTypePercentage  StandardType = "percentage"
	StandardTypeFixedAmount StandardType = "fixed_amount"
	StandardTypeOther       StandardType = "other"
)

// IsValid checks if the type is known
func (t StandardType) IsValid() bool {
	return t == StandardTypePercentage || t == StandardTypeFixedAmount || t == StandardTypeOther
}

var hundred = decimal.NewFromInt(100)

// Standard is the profit-sharing rule of an investment over a validity window.
// Windows of the same investment never overlap.
type Standard struct {
	shared.BaseAggregateRoot
	InvestmentID uuid.UUID
	Type         StandardType
	Value        decimal.Decimal
	MinAmount    *int64
	MaxAmount    *int64
	StartDate    time.Time
	EndDate      *time.Time
	Description  string
}

// StandardParams carries the fields of a new standard
type StandardParams struct {
	InvestmentID uuid.UUID
	Type         StandardType
	Value        decimal.Decimal
	MinAmount    *int64
	MaxAmount    *int64
	StartDate    time.Time
	EndDate      *time.Time
	Description  string
}

// NewStandard validates and creates a standard
func NewStandard(p StandardParams) (*Standard, error) {
	if p.InvestmentID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Investment ID cannot be empty")
	}
	if !p.Type.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown standard type %q", p.Type))
	}
	if p.Value.IsNegative() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Standard value cannot be negative")
	}
	if p.Type == StandardTypePercentage && p.Value.GreaterThan(hundred) {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Percentage cannot exceed 100")
	}
	if p.Type == StandardTypeFixedAmount && !p.Value.Equal(p.Value.Floor()) {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Fixed amount must be a whole number")
	}
	if p.MinAmount != nil && *p.MinAmount < 0 || p.MaxAmount != nil && *p.MaxAmount < 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Clamp amounts cannot be negative")
	}
	if p.MinAmount != nil && p.MaxAmount != nil && *p.MinAmount > *p.MaxAmount {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Minimum amount cannot exceed maximum amount")
	}
	if p.StartDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Standard start date is required")
	}
	start := valueobject.StartOfDay(p.StartDate)
	var end *time.Time
	if p.EndDate != nil {
		e := valueobject.StartOfDay(*p.EndDate)
		if e.Before(start) {
			return nil, shared.NewDomainError(shared.CodeInvalidDateRange, "Standard end date cannot precede start date")
		}
		end = &e
	}

	return &Standard{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvestmentID:      p.InvestmentID,
		Type:              p.Type,
		Value:             p.Value,
		MinAmount:         p.MinAmount,
		MaxAmount:         p.MaxAmount,
		StartDate:         start,
		EndDate:           end,
		Description:       p.Description,
	}, nil
}

// Window returns the inclusive validity window
func (s *Standard) Window() valueobject.DateWindow {
	return valueobject.DateWindow{Start: s.StartDate, End: s.EndDate}
}

// Covers reports whether the standard applies to a billing month.
// A standard applies when the first day of the month lies in its window.
func (s *Standard) Covers(p valueobject.MonthPeriod) bool {
	return s.Window().Contains(p.FirstDay())
}

func (s *Standard) clamp(amount int64) int64 {
	if s.MinAmount != nil && amount < *s.MinAmount {
		amount = *s.MinAmount
	}
	if s.MaxAmount != nil && amount > *s.MaxAmount {
		amount = *s.MaxAmount
	}
	return amount
}

func (s *Standard) withinClamps(amount int64) bool {
	if s.MinAmount != nil && amount < *s.MinAmount {
		return false
	}
	return s.MaxAmount == nil || amount <= *s.MaxAmount
}

// EnsureNoOverlap rejects candidate when its window shares a day with any
// existing standard of the same investment
func EnsureNoOverlap(existing []Standard, candidate *Standard) error {
	for i := range existing {
		s := &existing[i]
		if s.ID == candidate.ID || s.InvestmentID != candidate.InvestmentID {
			continue
		}
		if s.Window().Overlaps(candidate.Window()) {
			return shared.NewDomainError(shared.CodeOverlappingStandards,
				fmt.Sprintf("Standard window overlaps standard %s starting %s", s.ID, valueobject.FormatDate(s.StartDate)))
		}
	}
	return nil
}

// SelectStandard picks the standard covering the payment's month
func SelectStandard(standards []Standard, period valueobject.MonthPeriod) (*Standard, error) {
	var found *Standard
	for i := range standards {
		if !standards[i].Covers(period) {
			continue
		}
		if found != nil {
			return nil, shared.NewDomainError(shared.CodeOverlappingStandards,
				fmt.Sprintf("More than one standard covers %s", period))
		}
		found = &standards[i]
	}
	if found == nil {
		return nil, shared.NewDomainError(shared.CodeNoApplicableStandard,
			fmt.Sprintf("No profit-sharing standard covers %s", period))
	}
	return found, nil
}

// ComputeShare returns the profit share a standard yields for a payment.
// Percentages are floored to whole dollars before clamping. For the other
// type the caller supplies the amount and only the clamps are checked.
func ComputeShare(payment *leasing.RentalPayment, standard *Standard, manualAmount *int64) (int64, error) {
	if payment == nil || standard == nil {
		return 0, shared.NewDomainError(shared.CodeInvalidInput, "Payment and standard are required")
	}
	if standard.InvestmentID != payment.InvestmentID {
		return 0, shared.NewDomainError(shared.CodeInvalidInput, "Standard belongs to a different investment")
	}
	if !standard.Covers(payment.Period()) {
		return 0, shared.NewDomainError(shared.CodeNoApplicableStandard,
			fmt.Sprintf("Standard does not cover %s", payment.Period()))
	}

	switch standard.Type {
	case StandardTypePercentage:
		raw, _ := decimal.NewFromInt(payment.Amount).Mul(standard.Value).QuoRem(hundred, 0)
		return standard.clamp(raw.IntPart()), nil
	case StandardTypeFixedAmount:
		return standard.clamp(standard.Value.IntPart()), nil
	case StandardTypeOther:
		if manualAmount == nil {
			return 0, shared.NewDomainError(shared.CodeInvalidInput, "Manual amount is required for this standard")
		}
		if *manualAmount < 0 || !standard.withinClamps(*manualAmount) {
			return 0, shared.NewDomainError(shared.CodeAmountOutOfRange,
				fmt.Sprintf("Manual amount %d is outside the standard's range", *manualAmount))
		}
		return *manualAmount, nil
	}
	return 0, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown standard type %q", standard.Type))
}
