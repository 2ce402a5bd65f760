package leasing

import (
	"fmt"
	"strings"
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType discriminates the asset payload of an investment
type InvestmentType string

const (
	InvestmentTypeMovable   InvestmentType = "movable"
	InvestmentTypeImmovable InvestmentType = "immovable"
)

// IsValid checks if the type is known
func (t InvestmentType) IsValid() bool {
	return t == InvestmentTypeMovable || t == InvestmentTypeImmovable
}

// InvestmentStatus represents the lifecycle of an investment
type InvestmentStatus string

const (
	InvestmentStatusPending    InvestmentStatus = "pending"
	InvestmentStatusActive     InvestmentStatus = "active"
	InvestmentStatusSold       InvestmentStatus = "sold"
	InvestmentStatusCompleted  InvestmentStatus = "completed"
	InvestmentStatusTerminated InvestmentStatus = "terminated"
)

// IsValid checks if the status is known
func (s InvestmentStatus) IsValid() bool {
	switch s {
	case InvestmentStatusPending, InvestmentStatusActive, InvestmentStatusSold,
		InvestmentStatusCompleted, InvestmentStatusTerminated:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s InvestmentStatus) IsTerminal() bool {
	return s == InvestmentStatusSold || s == InvestmentStatusCompleted || s == InvestmentStatusTerminated
}

// allowedInvestmentTransitions lists the legal target states per source state
var allowedInvestmentTransitions = map[InvestmentStatus][]InvestmentStatus{
	InvestmentStatusPending: {InvestmentStatusActive, InvestmentStatusTerminated},
	InvestmentStatusActive:  {InvestmentStatusSold, InvestmentStatusCompleted, InvestmentStatusTerminated},
}

// CanTransitionTo reports whether the status may move to target
func (s InvestmentStatus) CanTransitionTo(target InvestmentStatus) bool {
	for _, allowed := range allowedInvestmentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AssetDetail is the type-specific payload of an investment.
// Exactly one implementation is attached to every investment.
type AssetDetail interface {
	Type() InvestmentType
	Validate() error
}

// MovableDetail describes equipment, vehicles and other movable assets
type MovableDetail struct {
	AssetCategory string `json:"asset_category"`
	SerialNumber  string `json:"serial_number,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Type implements AssetDetail
func (MovableDetail) Type() InvestmentType { return InvestmentTypeMovable }

// Validate implements AssetDetail
func (d MovableDetail) Validate() error {
	if strings.TrimSpace(d.AssetCategory) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Movable asset category is required")
	}
	if d.Quantity <= 0 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Movable asset quantity must be positive")
	}
	return nil
}

// ImmovableDetail describes land and buildings
type ImmovableDetail struct {
	Address    string          `json:"address"`
	LandNumber string          `json:"land_number,omitempty"`
	FloorArea  decimal.Decimal `json:"floor_area"`
}

// Type implements AssetDetail
func (ImmovableDetail) Type() InvestmentType { return InvestmentTypeImmovable }

// Validate implements AssetDetail
func (d ImmovableDetail) Validate() error {
	if strings.TrimSpace(d.Address) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Immovable asset address is required")
	}
	if d.FloorArea.IsNegative() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Floor area cannot be negative")
	}
	return nil
}

// Investment is an asset a company puts up for lease
type Investment struct {
	shared.BaseAggregateRoot
	CompanyID   uuid.UUID
	Name        string
	Status      InvestmentStatus
	Amount      int64
	StartDate   time.Time
	EndDate     *time.Time
	Description string
	Detail      AssetDetail
}

// Type returns the variant of the attached asset detail
func (i *Investment) Type() InvestmentType {
	if i.Detail == nil {
		return ""
	}
	return i.Detail.Type()
}

// NewInvestment creates a pending investment
func NewInvestment(companyID uuid.UUID, name string, amount int64, startDate time.Time, endDate *time.Time, detail AssetDetail) (*Investment, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Company ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Investment name cannot be empty")
	}
	if amount < 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Investment amount cannot be negative")
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Investment start date is required")
	}
	if endDate != nil && !valueobject.StartOfDay(*endDate).After(valueobject.StartOfDay(startDate)) {
		return nil, shared.NewDomainError(shared.CodeInvalidDateRange, "Investment end date must be after start date")
	}
	if detail == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Investment asset detail is required")
	}
	if err := detail.Validate(); err != nil {
		return nil, err
	}

	inv := &Investment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyID:         companyID,
		Name:              name,
		Status:            InvestmentStatusPending,
		Amount:            amount,
		StartDate:         valueobject.StartOfDay(startDate),
		EndDate:           endDate,
		Detail:            detail,
	}
	inv.AddDomainEvent(NewInvestmentStatusChangedEvent(inv, ""))
	return inv, nil
}

// TransitionTo moves the investment to target when the state machine allows it
func (i *Investment) TransitionTo(target InvestmentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown investment status %q", target))
	}
	if !i.Status.CanTransitionTo(target) {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot move investment from %s to %s", i.Status, target))
	}
	from := i.Status
	i.Status = target
	i.Touch()
	i.AddDomainEvent(NewInvestmentStatusChangedEvent(i, from))
	return nil
}

// Activate is shorthand for TransitionTo(active)
func (i *Investment) Activate() error {
	return i.TransitionTo(InvestmentStatusActive)
}

// IsActive returns true if new leases may be signed against the investment
func (i *Investment) IsActive() bool {
	return i.Status == InvestmentStatusActive
}
