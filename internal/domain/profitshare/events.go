package profitshare

import (
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventTypeProfitDistributed is raised once per distributed payment
const EventTypeProfitDistributed = "ProfitDistributed"

// ProfitDistributedEvent records how a payment's share was split
type ProfitDistributedEvent struct {
	shared.BaseDomainEvent
	InvestmentID uuid.UUID `json:"investment_id"`
	StandardID   uuid.UUID `json:"standard_id"`
	Total        int64     `json:"total"`
	Members      int       `json:"members"`
}

// NewProfitDistributedEvent creates a new ProfitDistributedEvent
func NewProfitDistributedEvent(payment *leasing.RentalPayment, standard *Standard, allocations []Allocation) *ProfitDistributedEvent {
	var total int64
	for _, a := range allocations {
		total += a.Amount
	}
	return &ProfitDistributedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProfitDistributed, "RentalPayment", payment.ID),
		InvestmentID:    payment.InvestmentID,
		StandardID:      standard.ID,
		Total:           total,
		Members:         len(allocations),
	}
}
