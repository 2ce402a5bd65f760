package profitshare

import (
	"context"

	"github.com/google/uuid"
)

// StandardRepository defines the interface for standard persistence
type StandardRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Standard, error)
	FindByInvestment(ctx context.Context, investmentID uuid.UUID) ([]Standard, error)
	Create(ctx context.Context, standard *Standard) error
}

// MemberProfitRepository defines the interface for member profit persistence
type MemberProfitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MemberProfit, error)
	FindByPayment(ctx context.Context, paymentID uuid.UUID) ([]MemberProfit, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]MemberProfit, error)
	ExistsForPayment(ctx context.Context, paymentID uuid.UUID) (bool, error)
	// CreateBatch inserts all profits of one distribution. A second
	// distribution of the same payment returns shared.CodeAlreadyDistributed.
	CreateBatch(ctx context.Context, profits []*MemberProfit) error
	SaveWithLock(ctx context.Context, profit *MemberProfit) error
}
