package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoice.Repository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Invoice")
	}
	return model.ToDomain(), nil
}

// FindByPayment finds the invoice issued for a payment
func (r *GormInvoiceRepository) FindByPayment(ctx context.Context, paymentID uuid.UUID) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Invoice")
	}
	return model.ToDomain(), nil
}

// ExistsByNumber reports whether an invoice number is taken
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("invoice_number = ?", number).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check invoice number: %w", err)
	}
	return count > 0, nil
}

// Create inserts an invoice. Payment and number are both unique; callers
// check the number first, so a violation here means the payment was
// invoiced concurrently.
func (r *GormInvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	db := r.db.WithContext(ctx)
	err := createIsolated(db, models.InvoiceModelFromDomain(inv))
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("create invoice: %w", err)
	}
	var invoiced int64
	if err := db.Model(&models.InvoiceModel{}).Where("payment_id = ?", inv.PaymentID).Count(&invoiced).Error; err != nil {
		return fmt.Errorf("classify invoice conflict: %w", err)
	}
	if invoiced > 0 {
		return shared.NewDomainError(shared.CodeAlreadyInvoiced, "An invoice was already issued for this payment")
	}
	return shared.NewDomainError(shared.CodeDuplicateCode, "Invoice number "+inv.InvoiceNumber+" is already used")
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormInvoiceRepository) SaveWithLock(ctx context.Context, inv *invoice.Invoice) error {
	copies := datatypes.JSONSlice[invoice.Copy]{}
	copies = append(copies, inv.PrintedCopies...)
	return saveVersioned(r.db.WithContext(ctx), &models.InvoiceModel{}, inv.ID, inv.Version, map[string]any{
		"status":         inv.Status,
		"printed_copies": copies,
		"void_reason":    inv.VoidReason,
		"version":        inv.Version,
		"updated_at":     inv.UpdatedAt,
	}, "Invoice")
}

var _ invoice.Repository = (*GormInvoiceRepository)(nil)
