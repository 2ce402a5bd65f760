package fee

import (
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	EventTypeFeeRecordCreated = "FeeRecordCreated"
	EventTypeFeeRecordPaid    = "FeeRecordPaid"
)

// FeeRecordCreatedEvent is raised when a fee is raised against a member
type FeeRecordCreatedEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID `json:"member_id"`
	Period   string    `json:"period"`
	Amount   int64     `json:"amount"`
}

// NewFeeRecordCreatedEvent creates a new FeeRecordCreatedEvent
func NewFeeRecordCreatedEvent(r *Record) *FeeRecordCreatedEvent {
	return &FeeRecordCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeeRecordCreated, "FeeRecord", r.ID),
		MemberID:        r.MemberID,
		Period:          r.Period,
		Amount:          r.Amount,
	}
}

// FeeRecordPaidEvent is raised when a fee is settled
type FeeRecordPaidEvent struct {
	shared.BaseDomainEvent
	MemberID   uuid.UUID `json:"member_id"`
	Period     string    `json:"period"`
	Amount     int64     `json:"amount"`
	WasOverdue bool      `json:"was_overdue"`
}

// NewFeeRecordPaidEvent creates a new FeeRecordPaidEvent
func NewFeeRecordPaidEvent(r *Record, wasOverdue bool) *FeeRecordPaidEvent {
	return &FeeRecordPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeeRecordPaid, "FeeRecord", r.ID),
		MemberID:        r.MemberID,
		Period:          r.Period,
		Amount:          r.Amount,
		WasOverdue:      wasOverdue,
	}
}
