package leasing

import (
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Investment DTOs ====================

// MovableDetailInput is the payload of a movable investment
type MovableDetailInput struct {
	AssetCategory string `json:"asset_category" binding:"required,max=100"`
	SerialNumber  string `json:"serial_number" binding:"omitempty,max=100"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
}

// ImmovableDetailInput is the payload of an immovable investment
type ImmovableDetailInput struct {
	Address    string          `json:"address" binding:"required,max=300"`
	LandNumber string          `json:"land_number" binding:"omitempty,max=50"`
	FloorArea  decimal.Decimal `json:"floor_area"`
}

// CreateInvestmentRequest represents a request to create an investment.
// Exactly one of Movable and Immovable must be set, matching Type.
type CreateInvestmentRequest struct {
	CompanyID   uuid.UUID             `json:"company_id" binding:"required"`
	Name        string                `json:"name" binding:"required,min=1,max=200"`
	Type        string                `json:"type" binding:"required,oneof=movable immovable"`
	Amount      int64                 `json:"amount" binding:"min=0"`
	StartDate   string                `json:"start_date" binding:"required,ymd"`
	EndDate     *string               `json:"end_date" binding:"omitempty,ymd"`
	Description string                `json:"description" binding:"max=2000"`
	Movable     *MovableDetailInput   `json:"movable"`
	Immovable   *ImmovableDetailInput `json:"immovable"`
}

// assetDetail resolves the tagged payload of the request
func (r CreateInvestmentRequest) assetDetail() (leasing.AssetDetail, error) {
	switch leasing.InvestmentType(r.Type) {
	case leasing.InvestmentTypeMovable:
		if r.Movable == nil || r.Immovable != nil {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Movable investments take exactly the movable payload")
		}
		return leasing.MovableDetail{
			AssetCategory: r.Movable.AssetCategory,
			SerialNumber:  r.Movable.SerialNumber,
			Quantity:      r.Movable.Quantity,
		}, nil
	case leasing.InvestmentTypeImmovable:
		if r.Immovable == nil || r.Movable != nil {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Immovable investments take exactly the immovable payload")
		}
		return leasing.ImmovableDetail{
			Address:    r.Immovable.Address,
			LandNumber: r.Immovable.LandNumber,
			FloorArea:  r.Immovable.FloorArea,
		}, nil
	}
	return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown investment type "+r.Type)
}

// ChangeInvestmentStatusRequest moves an investment through its lifecycle
type ChangeInvestmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active sold completed terminated"`
}

// InvestmentResponse is the API view of an investment
type InvestmentResponse struct {
	ID          uuid.UUID             `json:"id"`
	CompanyID   uuid.UUID             `json:"company_id"`
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Status      string                `json:"status"`
	Amount      int64                 `json:"amount"`
	StartDate   string                `json:"start_date"`
	EndDate     *string               `json:"end_date,omitempty"`
	Description string                `json:"description,omitempty"`
	Movable     *MovableDetailInput   `json:"movable,omitempty"`
	Immovable   *ImmovableDetailInput `json:"immovable,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	Version     int                   `json:"version"`
}

// ToInvestmentResponse converts a domain investment
func ToInvestmentResponse(inv *leasing.Investment) InvestmentResponse {
	resp := InvestmentResponse{
		ID:          inv.ID,
		CompanyID:   inv.CompanyID,
		Name:        inv.Name,
		Type:        string(inv.Type()),
		Status:      string(inv.Status),
		Amount:      inv.Amount,
		StartDate:   valueobject.FormatDate(inv.StartDate),
		EndDate:     formatDatePtr(inv.EndDate),
		Description: inv.Description,
		CreatedAt:   inv.CreatedAt,
		Version:     inv.Version,
	}
	switch d := inv.Detail.(type) {
	case leasing.MovableDetail:
		resp.Movable = &MovableDetailInput{AssetCategory: d.AssetCategory, SerialNumber: d.SerialNumber, Quantity: d.Quantity}
	case leasing.ImmovableDetail:
		resp.Immovable = &ImmovableDetailInput{Address: d.Address, LandNumber: d.LandNumber, FloorArea: d.FloorArea}
	}
	return resp
}

// ==================== Lease DTOs ====================

// TenantInput identifies the lessee
type TenantInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
	Email    string `json:"email" binding:"omitempty,email"`
	IDNumber string `json:"id_number" binding:"omitempty,max=20"`
}

// CreateLeaseRequest represents a request to sign a lease
type CreateLeaseRequest struct {
	Tenant            TenantInput `json:"tenant" binding:"required"`
	StartDate         string      `json:"start_date" binding:"required,ymd"`
	EndDate           string      `json:"end_date" binding:"required,ymd"`
	RentalAmount      int64       `json:"rental_amount" binding:"required,gt=0"`
	ProfitSharingNote string      `json:"profit_sharing_note" binding:"max=1000"`
}

// TerminateLeaseRequest ends a lease early
type TerminateLeaseRequest struct {
	EffectiveDate string `json:"effective_date" binding:"required,ymd"`
}

// LeaseResponse is the API view of a lease
type LeaseResponse struct {
	ID                uuid.UUID   `json:"id"`
	InvestmentID      uuid.UUID   `json:"investment_id"`
	Tenant            TenantInput `json:"tenant"`
	StartDate         string      `json:"start_date"`
	EndDate           string      `json:"end_date"`
	RentalAmount      int64       `json:"rental_amount"`
	Status            string      `json:"status"`
	TerminationDate   *string     `json:"termination_date,omitempty"`
	TerminatedAt      *time.Time  `json:"terminated_at,omitempty"`
	ProfitSharingNote string      `json:"profit_sharing_note,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

// ToLeaseResponse converts a domain lease
func ToLeaseResponse(l *leasing.LeaseItem) LeaseResponse {
	return LeaseResponse{
		ID:           l.ID,
		InvestmentID: l.InvestmentID,
		Tenant: TenantInput{
			Name:     l.Tenant.Name,
			Phone:    l.Tenant.Phone,
			Email:    l.Tenant.Email,
			IDNumber: l.Tenant.IDNumber,
		},
		StartDate:         valueobject.FormatDate(l.StartDate),
		EndDate:           valueobject.FormatDate(l.EndDate),
		RentalAmount:      l.RentalAmount,
		Status:            string(l.Status),
		TerminationDate:   formatDatePtr(l.TerminationDate),
		TerminatedAt:      l.TerminatedAt,
		ProfitSharingNote: l.ProfitSharingNote,
		CreatedAt:         l.CreatedAt,
	}
}

// ==================== Rental Payment DTOs ====================

// SchedulePaymentRequest schedules the rent of one month
type SchedulePaymentRequest struct {
	Year    int     `json:"year" binding:"required,min=1900,max=9999"`
	Month   int     `json:"month" binding:"required,min=1,max=12"`
	DueDate *string `json:"due_date" binding:"omitempty,ymd"`
}

// ScheduleRangeRequest schedules every missing month from From to To, both YYYY-MM
type ScheduleRangeRequest struct {
	From string `json:"from" binding:"required,datetime=2006-01"`
	To   string `json:"to" binding:"required,datetime=2006-01"`
}

// ScheduleRangeResponse reports what a ranged scheduling did
type ScheduleRangeResponse struct {
	Created []PaymentResponse `json:"created"`
	Skipped []SkippedPeriod   `json:"skipped"`
}

// SkippedPeriod is a month that was not scheduled and why
type SkippedPeriod struct {
	Period string `json:"period"`
	Reason string `json:"reason"`
}

// RecordPaymentRequest settles a rental payment
type RecordPaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=cash bank_transfer line_pay check other"`
	Date   string `json:"date" binding:"required,ymd"`
	Note   string `json:"note" binding:"max=500"`
}

// CancelPaymentRequest voids a rental payment
type CancelPaymentRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// PaymentResponse is the API view of a rental payment
type PaymentResponse struct {
	ID             uuid.UUID  `json:"id"`
	InvestmentID   uuid.UUID  `json:"investment_id"`
	Year           int        `json:"year"`
	Month          int        `json:"month"`
	Amount         int64      `json:"amount"`
	LeaseStartDate string     `json:"lease_start_date"`
	DueDate        string     `json:"due_date"`
	Status         string     `json:"status"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	PaymentDate    *string    `json:"payment_date,omitempty"`
	Note           string     `json:"note,omitempty"`
	CancelReason   string     `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	Version        int        `json:"version"`
}

// ToPaymentResponse converts a domain rental payment
func ToPaymentResponse(p *leasing.RentalPayment) PaymentResponse {
	resp := PaymentResponse{
		ID:             p.ID,
		InvestmentID:   p.InvestmentID,
		Year:           p.Year,
		Month:          p.Month,
		Amount:         p.Amount,
		LeaseStartDate: valueobject.FormatDate(p.LeaseStartDate),
		DueDate:        valueobject.FormatDate(p.DueDate),
		Status:         string(p.Status),
		PaymentMethod:  string(p.PaymentMethod),
		PaymentDate:    formatDatePtr(p.PaymentDate),
		Note:           p.Note,
		CancelReason:   p.CancelReason,
		CreatedAt:      p.CreatedAt,
		Version:        p.Version,
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

// PaymentSummaryResponse totals an investment's payments by status
type PaymentSummaryResponse struct {
	InvestmentID uuid.UUID        `json:"investment_id"`
	Counts       map[string]int   `json:"counts"`
	Totals       map[string]int64 `json:"totals"`
	Outstanding  int64            `json:"outstanding"`
	Received     int64            `json:"received"`
}

// ==================== Sweep DTOs ====================

// SweepResult reports one sweep run
type SweepResult struct {
	ExpiredLeases   int       `json:"expired_leases"`
	OverduePayments int       `json:"overdue_payments"`
	Skipped         bool      `json:"skipped"`
	RanAt           time.Time `json:"ran_at"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := valueobject.FormatDate(*t)
	return &s
}

// parseDate parses a wire date and reports failures as INVALID_INPUT
func parseDate(field, value string) (time.Time, error) {
	t, err := valueobject.ParseDate(value)
	if err != nil {
		return time.Time{}, shared.NewDomainError(shared.CodeInvalidInput, field+" must be YYYY-MM-DD")
	}
	return t, nil
}
