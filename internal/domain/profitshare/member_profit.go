package profitshare

import (
	"fmt"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProfitStatus represents the payout lifecycle of a member's share
type ProfitStatus string

const (
	ProfitStatusPending   ProfitStatus = "pending"
	ProfitStatusPaid      ProfitStatus = "paid"
	ProfitStatusCancelled ProfitStatus = "cancelled"
)

// MemberProfit is a member's share of one paid rental payment
type MemberProfit struct {
	shared.BaseAggregateRoot
	InvestmentID    uuid.UUID
	RentalPaymentID uuid.UUID
	StandardID      uuid.UUID
	MemberID        uuid.UUID
	Year            int
	Month           int
	Amount          int64
	Status          ProfitStatus
	PaidAt          *time.Time
}

// NewMemberProfits turns allocations into profit records. The payment must
// already be paid.
func NewMemberProfits(payment *leasing.RentalPayment, standard *Standard, allocations []Allocation) ([]*MemberProfit, error) {
	if payment.Status != leasing.PaymentStatusPaid {
		return nil, shared.NewDomainError(shared.CodePaymentNotPaid,
			fmt.Sprintf("Cannot distribute profit of a payment in %s status", payment.Status))
	}
	profits := make([]*MemberProfit, 0, len(allocations))
	for _, a := range allocations {
		mp := &MemberProfit{
			BaseAggregateRoot: shared.NewBaseAggregateRoot(),
			InvestmentID:      payment.InvestmentID,
			RentalPaymentID:   payment.ID,
			StandardID:        standard.ID,
			MemberID:          a.MemberID,
			Year:              payment.Year,
			Month:             payment.Month,
			Amount:            a.Amount,
			Status:            ProfitStatusPending,
		}
		profits = append(profits, mp)
	}
	if len(profits) > 0 {
		profits[0].AddDomainEvent(NewProfitDistributedEvent(payment, standard, allocations))
	}
	return profits, nil
}

// MarkPaid records that the share was paid out to the member
func (p *MemberProfit) MarkPaid(at time.Time) error {
	if p.Status != ProfitStatusPending {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot pay out profit in %s status", p.Status))
	}
	p.Status = ProfitStatusPaid
	p.PaidAt = &at
	p.Touch()
	return nil
}
