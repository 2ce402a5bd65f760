package leasing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InvestmentRepository defines the interface for investment persistence
type InvestmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Investment, error)
	// FindByIDForUpdate loads the investment and locks its row until the
	// surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Investment, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]Investment, error)
	Create(ctx context.Context, inv *Investment) error
	SaveWithLock(ctx context.Context, inv *Investment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LeaseRepository defines the interface for lease persistence
type LeaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeaseItem, error)
	FindByInvestment(ctx context.Context, investmentID uuid.UUID) ([]LeaseItem, error)
	// FindActiveEndedBefore returns active leases whose end date precedes cutoff
	FindActiveEndedBefore(ctx context.Context, cutoff time.Time, limit int) ([]LeaseItem, error)
	CountByInvestment(ctx context.Context, investmentID uuid.UUID) (int64, error)
	Create(ctx context.Context, lease *LeaseItem) error
	SaveWithLock(ctx context.Context, lease *LeaseItem) error
}

// RentalPaymentRepository defines the interface for rental payment persistence
type RentalPaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalPayment, error)
	FindByInvestment(ctx context.Context, investmentID uuid.UUID) ([]RentalPayment, error)
	ExistsForPeriod(ctx context.Context, investmentID uuid.UUID, year, month int) (bool, error)
	// FindPendingDueBefore returns pending payments whose due date precedes cutoff
	FindPendingDueBefore(ctx context.Context, cutoff time.Time, limit int) ([]RentalPayment, error)
	CountByInvestment(ctx context.Context, investmentID uuid.UUID) (int64, error)
	// Create inserts a payment. An (investment, year, month) collision
	// returns shared.CodeDuplicatePeriod.
	Create(ctx context.Context, payment *RentalPayment) error
	// SaveWithLock updates with an optimistic version check and returns
	// shared.CodeConcurrencyConflict when the row changed underneath
	SaveWithLock(ctx context.Context, payment *RentalPayment) error
	// MarkOverdueIfPending flips a single row to overdue only while it is
	// still pending at the expected version. It reports whether it did.
	MarkOverdueIfPending(ctx context.Context, payment *RentalPayment) (bool, error)
}
