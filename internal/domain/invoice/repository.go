package invoice

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for invoice persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByPayment(ctx context.Context, paymentID uuid.UUID) (*Invoice, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	// Create inserts an invoice. A second invoice for the same payment
	// returns shared.CodeAlreadyInvoiced and a reused number
	// shared.CodeDuplicateCode.
	Create(ctx context.Context, inv *Invoice) error
	SaveWithLock(ctx context.Context, inv *Invoice) error
}
