package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvestmentRepository implements leasing.InvestmentRepository using GORM
type GormInvestmentRepository struct {
	db *gorm.DB
}

// NewGormInvestmentRepository creates a new GormInvestmentRepository
func NewGormInvestmentRepository(db *gorm.DB) *GormInvestmentRepository {
	return &GormInvestmentRepository{db: db}
}

// FindByID finds an investment by its ID
func (r *GormInvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.Investment, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate finds an investment and holds a row lock on it until the
// transaction ends. SQLite ignores the locking clause.
func (r *GormInvestmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*leasing.Investment, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormInvestmentRepository) find(db *gorm.DB, id uuid.UUID) (*leasing.Investment, error) {
	var model models.InvestmentModel
	if err := db.Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Investment")
	}
	return model.ToDomain()
}

// FindByCompany lists a company's investments
func (r *GormInvestmentRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]leasing.Investment, error) {
	var rows []models.InvestmentModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("start_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	investments := make([]leasing.Investment, 0, len(rows))
	for i := range rows {
		inv, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		investments = append(investments, *inv)
	}
	return investments, nil
}

// Create inserts an investment
func (r *GormInvestmentRepository) Create(ctx context.Context, inv *leasing.Investment) error {
	m, err := models.InvestmentModelFromDomain(inv)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create investment: %w", err)
	}
	return nil
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormInvestmentRepository) SaveWithLock(ctx context.Context, inv *leasing.Investment) error {
	m, err := models.InvestmentModelFromDomain(inv)
	if err != nil {
		return err
	}
	return saveVersioned(r.db.WithContext(ctx), &models.InvestmentModel{}, inv.ID, inv.Version, map[string]any{
		"name":        m.Name,
		"status":      m.Status,
		"amount":      m.Amount,
		"end_date":    m.EndDate,
		"description": m.Description,
		"detail":      m.Detail,
		"version":     m.Version,
		"updated_at":  m.UpdatedAt,
	}, "Investment")
}

// Delete removes an investment
func (r *GormInvestmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InvestmentModel{})
	if result.Error != nil {
		return fmt.Errorf("delete investment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError(shared.CodeNotFound, "Investment not found")
	}
	return nil
}

// GormLeaseRepository implements leasing.LeaseRepository using GORM
type GormLeaseRepository struct {
	db *gorm.DB
}

// NewGormLeaseRepository creates a new GormLeaseRepository
func NewGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{db: db}
}

// FindByID finds a lease by its ID
func (r *GormLeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.LeaseItem, error) {
	var model models.LeaseItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Lease")
	}
	return model.ToDomain(), nil
}

// FindByInvestment lists the leases of an investment by start date
func (r *GormLeaseRepository) FindByInvestment(ctx context.Context, investmentID uuid.UUID) ([]leasing.LeaseItem, error) {
	return r.list(r.db.WithContext(ctx).
		Where("investment_id = ?", investmentID).
		Order("start_date ASC"))
}

// FindActiveEndedBefore returns active leases whose end date precedes cutoff
func (r *GormLeaseRepository) FindActiveEndedBefore(ctx context.Context, cutoff time.Time, limit int) ([]leasing.LeaseItem, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", leasing.LeaseStatusActive, cutoff).
		Order("end_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.list(query)
}

func (r *GormLeaseRepository) list(query *gorm.DB) ([]leasing.LeaseItem, error) {
	var rows []models.LeaseItemModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	leases := make([]leasing.LeaseItem, len(rows))
	for i := range rows {
		leases[i] = *rows[i].ToDomain()
	}
	return leases, nil
}

// CountByInvestment counts the leases of an investment
func (r *GormLeaseRepository) CountByInvestment(ctx context.Context, investmentID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LeaseItemModel{}).
		Where("investment_id = ?", investmentID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count leases: %w", err)
	}
	return count, nil
}

// Create inserts a lease
func (r *GormLeaseRepository) Create(ctx context.Context, lease *leasing.LeaseItem) error {
	if err := r.db.WithContext(ctx).Create(models.LeaseItemModelFromDomain(lease)).Error; err != nil {
		return fmt.Errorf("create lease: %w", err)
	}
	return nil
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormLeaseRepository) SaveWithLock(ctx context.Context, lease *leasing.LeaseItem) error {
	return saveVersioned(r.db.WithContext(ctx), &models.LeaseItemModel{}, lease.ID, lease.Version, map[string]any{
		"status":              lease.Status,
		"termination_date":    lease.TerminationDate,
		"terminated_at":       lease.TerminatedAt,
		"profit_sharing_note": lease.ProfitSharingNote,
		"version":             lease.Version,
		"updated_at":          lease.UpdatedAt,
	}, "Lease")
}

// GormRentalPaymentRepository implements leasing.RentalPaymentRepository using GORM
type GormRentalPaymentRepository struct {
	db *gorm.DB
}

// NewGormRentalPaymentRepository creates a new GormRentalPaymentRepository
func NewGormRentalPaymentRepository(db *gorm.DB) *GormRentalPaymentRepository {
	return &GormRentalPaymentRepository{db: db}
}

// FindByID finds a rental payment by its ID
func (r *GormRentalPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*leasing.RentalPayment, error) {
	var model models.RentalPaymentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Rental payment")
	}
	return model.ToDomain(), nil
}

// FindByInvestment lists the payments of an investment in period order
func (r *GormRentalPaymentRepository) FindByInvestment(ctx context.Context, investmentID uuid.UUID) ([]leasing.RentalPayment, error) {
	return r.list(r.db.WithContext(ctx).
		Where("investment_id = ?", investmentID).
		Order("year ASC, month ASC"))
}

// ExistsForPeriod reports whether a payment exists for the period
func (r *GormRentalPaymentRepository) ExistsForPeriod(ctx context.Context, investmentID uuid.UUID, year, month int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RentalPaymentModel{}).
		Where("investment_id = ? AND year = ? AND month = ?", investmentID, year, month).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check rental payment: %w", err)
	}
	return count > 0, nil
}

// FindPendingDueBefore returns pending payments whose due date precedes cutoff
func (r *GormRentalPaymentRepository) FindPendingDueBefore(ctx context.Context, cutoff time.Time, limit int) ([]leasing.RentalPayment, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", leasing.PaymentStatusPending, cutoff).
		Order("due_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.list(query)
}

func (r *GormRentalPaymentRepository) list(query *gorm.DB) ([]leasing.RentalPayment, error) {
	var rows []models.RentalPaymentModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list rental payments: %w", err)
	}
	payments := make([]leasing.RentalPayment, len(rows))
	for i := range rows {
		payments[i] = *rows[i].ToDomain()
	}
	return payments, nil
}

// CountByInvestment counts the payments of an investment
func (r *GormRentalPaymentRepository) CountByInvestment(ctx context.Context, investmentID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RentalPaymentModel{}).
		Where("investment_id = ?", investmentID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count rental payments: %w", err)
	}
	return count, nil
}

// Create inserts a rental payment
func (r *GormRentalPaymentRepository) Create(ctx context.Context, payment *leasing.RentalPayment) error {
	if err := createIsolated(r.db.WithContext(ctx), models.RentalPaymentModelFromDomain(payment)); err != nil {
		return duplicateOr(err, shared.CodeDuplicatePeriod,
			fmt.Sprintf("A rental payment for %04d-%02d already exists", payment.Year, payment.Month),
			"create rental payment")
	}
	return nil
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormRentalPaymentRepository) SaveWithLock(ctx context.Context, payment *leasing.RentalPayment) error {
	return saveVersioned(r.db.WithContext(ctx), &models.RentalPaymentModel{}, payment.ID, payment.Version, map[string]any{
		"status":         payment.Status,
		"payment_method": payment.PaymentMethod,
		"payment_date":   payment.PaymentDate,
		"note":           payment.Note,
		"cancel_reason":  payment.CancelReason,
		"version":        payment.Version,
		"updated_at":     payment.UpdatedAt,
	}, "Rental payment")
}

// MarkOverdueIfPending flips the row to overdue only while it is still
// pending at the version the payment was loaded with
func (r *GormRentalPaymentRepository) MarkOverdueIfPending(ctx context.Context, payment *leasing.RentalPayment) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.RentalPaymentModel{}).
		Where("id = ? AND status = ? AND version = ?", payment.ID, leasing.PaymentStatusPending, payment.Version-1).
		Updates(map[string]any{
			"status":     leasing.PaymentStatusOverdue,
			"version":    payment.Version,
			"updated_at": payment.UpdatedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("mark payment overdue: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

var (
	_ leasing.InvestmentRepository    = (*GormInvestmentRepository)(nil)
	_ leasing.LeaseRepository         = (*GormLeaseRepository)(nil)
	_ leasing.RentalPaymentRepository = (*GormRentalPaymentRepository)(nil)
)
