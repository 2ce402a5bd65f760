package profitshare

import (
	"time"

	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateStandardRequest adds a profit-sharing standard to an investment
type CreateStandardRequest struct {
	Type        string          `json:"type" binding:"required,oneof=percentage fixed_amount other"`
	Value       decimal.Decimal `json:"value"`
	MinAmount   *int64          `json:"min_amount" binding:"omitempty,min=0"`
	MaxAmount   *int64          `json:"max_amount" binding:"omitempty,min=0"`
	StartDate   string          `json:"start_date" binding:"required,ymd"`
	EndDate     *string         `json:"end_date" binding:"omitempty,ymd"`
	Description string          `json:"description" binding:"max=1000"`
}

// StandardResponse is the API view of a standard
type StandardResponse struct {
	ID           uuid.UUID       `json:"id"`
	InvestmentID uuid.UUID       `json:"investment_id"`
	Type         string          `json:"type"`
	Value        decimal.Decimal `json:"value"`
	MinAmount    *int64          `json:"min_amount,omitempty"`
	MaxAmount    *int64          `json:"max_amount,omitempty"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date,omitempty"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToStandardResponse converts a domain standard
func ToStandardResponse(s *profitshare.Standard) StandardResponse {
	resp := StandardResponse{
		ID:           s.ID,
		InvestmentID: s.InvestmentID,
		Type:         string(s.Type),
		Value:        s.Value,
		MinAmount:    s.MinAmount,
		MaxAmount:    s.MaxAmount,
		StartDate:    valueobject.FormatDate(s.StartDate),
		Description:  s.Description,
		CreatedAt:    s.CreatedAt,
	}
	if s.EndDate != nil {
		end := valueobject.FormatDate(*s.EndDate)
		resp.EndDate = &end
	}
	return resp
}

// DistributeRequest splits a paid payment's share across members. When
// StandardID is omitted the standard covering the payment's month is used.
type DistributeRequest struct {
	StandardID    *uuid.UUID          `json:"standard_id"`
	MemberIDs     []uuid.UUID         `json:"member_ids" binding:"required,min=1"`
	MemberWeights map[uuid.UUID]int64 `json:"member_weights"`
	ManualAmount  *int64              `json:"manual_amount" binding:"omitempty,min=0"`
}

// MemberProfitResponse is the API view of a member's profit
type MemberProfitResponse struct {
	ID              uuid.UUID  `json:"id"`
	InvestmentID    uuid.UUID  `json:"investment_id"`
	RentalPaymentID uuid.UUID  `json:"rental_payment_id"`
	StandardID      uuid.UUID  `json:"standard_id"`
	MemberID        uuid.UUID  `json:"member_id"`
	Year            int        `json:"year"`
	Month           int        `json:"month"`
	Amount          int64      `json:"amount"`
	Status          string     `json:"status"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToMemberProfitResponse converts a domain member profit
func ToMemberProfitResponse(p *profitshare.MemberProfit) MemberProfitResponse {
	return MemberProfitResponse{
		ID:              p.ID,
		InvestmentID:    p.InvestmentID,
		RentalPaymentID: p.RentalPaymentID,
		StandardID:      p.StandardID,
		MemberID:        p.MemberID,
		Year:            p.Year,
		Month:           p.Month,
		Amount:          p.Amount,
		Status:          string(p.Status),
		PaidAt:          p.PaidAt,
		CreatedAt:       p.CreatedAt,
	}
}

// DistributionResponse reports one distribution
type DistributionResponse struct {
	RentalPaymentID uuid.UUID              `json:"rental_payment_id"`
	StandardID      uuid.UUID              `json:"standard_id"`
	Total           int64                  `json:"total"`
	Profits         []MemberProfitResponse `json:"profits"`
}

func toProfitResponses(profits []profitshare.MemberProfit) []MemberProfitResponse {
	out := make([]MemberProfitResponse, len(profits))
	for i := range profits {
		out[i] = ToMemberProfitResponse(&profits[i])
	}
	return out
}

func parseDate(field, value string) (time.Time, error) {
	t, err := valueobject.ParseDate(value)
	if err != nil {
		return time.Time{}, shared.NewDomainError(shared.CodeInvalidInput, field+" must be YYYY-MM-DD")
	}
	return t, nil
}
