package persistence

import (
	"context"
	"fmt"

	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStandardRepository implements profitshare.StandardRepository using GORM
type GormStandardRepository struct {
	db *gorm.DB
}

// NewGormStandardRepository creates a new GormStandardRepository
func NewGormStandardRepository(db *gorm.DB) *GormStandardRepository {
	return &GormStandardRepository{db: db}
}

// FindByID finds a standard by its ID
func (r *GormStandardRepository) FindByID(ctx context.Context, id uuid.UUID) (*profitshare.Standard, error) {
	var model models.StandardModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Profit sharing standard")
	}
	return model.ToDomain(), nil
}

// FindByInvestment lists the standards of an investment by start date
func (r *GormStandardRepository) FindByInvestment(ctx context.Context, investmentID uuid.UUID) ([]profitshare.Standard, error) {
	var rows []models.StandardModel
	if err := r.db.WithContext(ctx).
		Where("investment_id = ?", investmentID).
		Order("start_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list standards: %w", err)
	}
	standards := make([]profitshare.Standard, len(rows))
	for i := range rows {
		standards[i] = *rows[i].ToDomain()
	}
	return standards, nil
}

// Create inserts a standard
func (r *GormStandardRepository) Create(ctx context.Context, standard *profitshare.Standard) error {
	if err := r.db.WithContext(ctx).Create(models.StandardModelFromDomain(standard)).Error; err != nil {
		return fmt.Errorf("create standard: %w", err)
	}
	return nil
}

// GormMemberProfitRepository implements profitshare.MemberProfitRepository using GORM
type GormMemberProfitRepository struct {
	db *gorm.DB
}

// NewGormMemberProfitRepository creates a new GormMemberProfitRepository
func NewGormMemberProfitRepository(db *gorm.DB) *GormMemberProfitRepository {
	return &GormMemberProfitRepository{db: db}
}

// FindByID finds a member profit by its ID
func (r *GormMemberProfitRepository) FindByID(ctx context.Context, id uuid.UUID) (*profitshare.MemberProfit, error) {
	var model models.MemberProfitModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Member profit")
	}
	return model.ToDomain(), nil
}

// FindByPayment lists the profits distributed from one payment
func (r *GormMemberProfitRepository) FindByPayment(ctx context.Context, paymentID uuid.UUID) ([]profitshare.MemberProfit, error) {
	return r.list(r.db.WithContext(ctx).
		Where("rental_payment_id = ?", paymentID).
		Order("created_at ASC, amount DESC"))
}

// FindByMember lists a member's profits, newest period first
func (r *GormMemberProfitRepository) FindByMember(ctx context.Context, memberID uuid.UUID) ([]profitshare.MemberProfit, error) {
	return r.list(r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("year DESC, month DESC"))
}

func (r *GormMemberProfitRepository) list(query *gorm.DB) ([]profitshare.MemberProfit, error) {
	var rows []models.MemberProfitModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list member profits: %w", err)
	}
	profits := make([]profitshare.MemberProfit, len(rows))
	for i := range rows {
		profits[i] = *rows[i].ToDomain()
	}
	return profits, nil
}

// ExistsForPayment reports whether a payment was already distributed
func (r *GormMemberProfitRepository) ExistsForPayment(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MemberProfitModel{}).
		Where("rental_payment_id = ?", paymentID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check member profits: %w", err)
	}
	return count > 0, nil
}

// CreateBatch inserts all profits of one distribution
func (r *GormMemberProfitRepository) CreateBatch(ctx context.Context, profits []*profitshare.MemberProfit) error {
	if len(profits) == 0 {
		return nil
	}
	rows := make([]*models.MemberProfitModel, len(profits))
	for i, p := range profits {
		rows[i] = models.MemberProfitModelFromDomain(p)
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return duplicateOr(err, shared.CodeAlreadyDistributed,
			"Profits for this payment were already distributed", "create member profits")
	}
	return nil
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormMemberProfitRepository) SaveWithLock(ctx context.Context, profit *profitshare.MemberProfit) error {
	return saveVersioned(r.db.WithContext(ctx), &models.MemberProfitModel{}, profit.ID, profit.Version, map[string]any{
		"status":     profit.Status,
		"paid_at":    profit.PaidAt,
		"version":    profit.Version,
		"updated_at": profit.UpdatedAt,
	}, "Member profit")
}

var (
	_ profitshare.StandardRepository     = (*GormStandardRepository)(nil)
	_ profitshare.MemberProfitRepository = (*GormMemberProfitRepository)(nil)
)
