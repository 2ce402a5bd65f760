package fee

import (
	"time"

	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CreateFeeSettingRequest represents a request to create a fee setting
type CreateFeeSettingRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Period     string `json:"period" binding:"required,oneof=monthly quarterly yearly lifetime"`
	MemberRole string `json:"member_role" binding:"required,oneof=admin normal lifetime business"`
}

// FeeSettingResponse is the API view of a fee setting
type FeeSettingResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Amount     int64     `json:"amount"`
	Period     string    `json:"period"`
	MemberRole string    `json:"member_role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToFeeSettingResponse converts a domain setting
func ToFeeSettingResponse(s *fee.Setting) FeeSettingResponse {
	return FeeSettingResponse{
		ID:         s.ID,
		Name:       s.Name,
		Amount:     s.Amount,
		Period:     string(s.PeriodKind),
		MemberRole: string(s.MemberRole),
		Active:     s.Active,
		CreatedAt:  s.CreatedAt,
	}
}

// CreateFeeRecordRequest raises a fee for a member and period
type CreateFeeRecordRequest struct {
	MemberID  uuid.UUID `json:"member_id" binding:"required"`
	SettingID uuid.UUID `json:"setting_id" binding:"required"`
	Period    string    `json:"period" binding:"required,max=20"`
}

// MarkFeePaidRequest settles a fee record
type MarkFeePaidRequest struct {
	PaidDate string `json:"paid_date" binding:"required,ymd"`
	Method   string `json:"method" binding:"required,oneof=cash bank_transfer line_pay check other"`
}

// CancelFeeRecordRequest voids a fee record
type CancelFeeRecordRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// FeeRecordResponse is the API view of a fee record. Status is the
// effective status at the time of the read.
type FeeRecordResponse struct {
	ID            uuid.UUID  `json:"id"`
	MemberID      uuid.UUID  `json:"member_id"`
	SettingID     uuid.UUID  `json:"setting_id"`
	Period        string     `json:"period"`
	Amount        int64      `json:"amount"`
	DueDate       string     `json:"due_date"`
	Status        string     `json:"status"`
	PaidDate      *string    `json:"paid_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	CancelReason  string     `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ToFeeRecordResponse converts a domain record, deriving its status at now
func ToFeeRecordResponse(r *fee.Record, now time.Time) FeeRecordResponse {
	resp := FeeRecordResponse{
		ID:            r.ID,
		MemberID:      r.MemberID,
		SettingID:     r.SettingID,
		Period:        r.Period,
		Amount:        r.Amount,
		DueDate:       valueobject.FormatDate(r.DueDate),
		Status:        string(r.EffectiveStatus(now)),
		PaymentMethod: string(r.PaymentMethod),
		CancelReason:  r.CancelReason,
		CreatedAt:     r.CreatedAt,
	}
	if r.PaidDate != nil {
		d := valueobject.FormatDate(*r.PaidDate)
		resp.PaidDate = &d
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

// MemberFeesResponse lists a member's fees with the amount still owed
type MemberFeesResponse struct {
	MemberID    uuid.UUID           `json:"member_id"`
	Records     []FeeRecordResponse `json:"records"`
	Outstanding int64               `json:"outstanding"`
}
