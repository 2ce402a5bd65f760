package persistence

import (
	"context"
	"fmt"

	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFeeSettingRepository implements fee.SettingRepository using GORM
type GormFeeSettingRepository struct {
	db *gorm.DB
}

// NewGormFeeSettingRepository creates a new GormFeeSettingRepository
func NewGormFeeSettingRepository(db *gorm.DB) *GormFeeSettingRepository {
	return &GormFeeSettingRepository{db: db}
}

// FindByID finds a fee setting by its ID
func (r *GormFeeSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*fee.Setting, error) {
	var model models.FeeSettingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Fee setting")
	}
	return model.ToDomain(), nil
}

// FindAll lists fee settings, optionally only active ones
func (r *GormFeeSettingRepository) FindAll(ctx context.Context, activeOnly bool) ([]fee.Setting, error) {
	query := r.db.WithContext(ctx).Model(&models.FeeSettingModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var rows []models.FeeSettingModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list fee settings: %w", err)
	}
	settings := make([]fee.Setting, len(rows))
	for i := range rows {
		settings[i] = *rows[i].ToDomain()
	}
	return settings, nil
}

// Save inserts or fully replaces a fee setting
func (r *GormFeeSettingRepository) Save(ctx context.Context, setting *fee.Setting) error {
	if err := r.db.WithContext(ctx).Save(models.FeeSettingModelFromDomain(setting)).Error; err != nil {
		return fmt.Errorf("save fee setting: %w", err)
	}
	return nil
}

// GormFeeRecordRepository implements fee.RecordRepository using GORM
type GormFeeRecordRepository struct {
	db *gorm.DB
}

// NewGormFeeRecordRepository creates a new GormFeeRecordRepository
func NewGormFeeRecordRepository(db *gorm.DB) *GormFeeRecordRepository {
	return &GormFeeRecordRepository{db: db}
}

// FindByID finds a fee record by its ID
func (r *GormFeeRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*fee.Record, error) {
	var model models.FeeRecordModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Fee record")
	}
	return model.ToDomain(), nil
}

// FindByMember lists a member's fee records, oldest due first
func (r *GormFeeRecordRepository) FindByMember(ctx context.Context, memberID uuid.UUID) ([]fee.Record, error) {
	var rows []models.FeeRecordModel
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("due_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list fee records: %w", err)
	}
	records := make([]fee.Record, len(rows))
	for i := range rows {
		records[i] = *rows[i].ToDomain()
	}
	return records, nil
}

// ExistsForPeriod reports whether the member already has a record for period
func (r *GormFeeRecordRepository) ExistsForPeriod(ctx context.Context, memberID uuid.UUID, period string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FeeRecordModel{}).
		Where("member_id = ? AND period = ?", memberID, period).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check fee record: %w", err)
	}
	return count > 0, nil
}

// Create inserts a fee record
func (r *GormFeeRecordRepository) Create(ctx context.Context, record *fee.Record) error {
	if err := r.db.WithContext(ctx).Create(models.FeeRecordModelFromDomain(record)).Error; err != nil {
		return duplicateOr(err, shared.CodeDuplicatePeriod,
			fmt.Sprintf("A fee record for period %s already exists", record.Period), "create fee record")
	}
	return nil
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormFeeRecordRepository) SaveWithLock(ctx context.Context, record *fee.Record) error {
	m := models.FeeRecordModelFromDomain(record)
	return saveVersioned(r.db.WithContext(ctx), &models.FeeRecordModel{}, record.ID, record.Version, map[string]any{
		"status":         m.Status,
		"paid_date":      m.PaidDate,
		"payment_method": m.PaymentMethod,
		"cancel_reason":  m.CancelReason,
		"version":        m.Version,
		"updated_at":     m.UpdatedAt,
	}, "Fee record")
}

var (
	_ fee.SettingRepository = (*GormFeeSettingRepository)(nil)
	_ fee.RecordRepository  = (*GormFeeRecordRepository)(nil)
)
