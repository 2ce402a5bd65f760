package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSequenceRetries bounds compare-and-swap attempts per reservation
const DefaultSequenceRetries = 5

// GormSequenceRepository implements shared.SequenceRepository with one
// counter row per scope advanced by compare-and-swap on its version
type GormSequenceRepository struct {
	db         *gorm.DB
	maxRetries int
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB, maxRetries int) *GormSequenceRepository {
	if maxRetries < 1 {
		maxRetries = DefaultSequenceRetries
	}
	return &GormSequenceRepository{db: db, maxRetries: maxRetries}
}

// Reserve returns the next value for scope. A missing counter is created from
// seed with insert-if-absent; losing that race or a version check retries.
func (r *GormSequenceRepository) Reserve(ctx context.Context, scope string, seed shared.SeedFunc) (int64, error) {
	db := r.db.WithContext(ctx)
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		var row models.IdentifierSequenceModel
		err := db.Where("scope = ?", scope).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			value, created, err := r.insertSeeded(ctx, db, scope, seed)
			if err != nil {
				return 0, err
			}
			if created {
				return value, nil
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("read sequence %s: %w", scope, err)
		}

		next := row.LastValue + 1
		result := db.Model(&models.IdentifierSequenceModel{}).
			Where("scope = ? AND version = ?", scope, row.Version).
			Updates(map[string]any{
				"last_value": next,
				"version":    row.Version + 1,
				"updated_at": shared.Now(),
			})
		if result.Error != nil {
			return 0, fmt.Errorf("advance sequence %s: %w", scope, result.Error)
		}
		if result.RowsAffected == 1 {
			return next, nil
		}
	}
	return 0, shared.NewDomainError(shared.CodeConcurrencyConflict,
		fmt.Sprintf("Could not reserve a value for %s, try again", scope))
}

func (r *GormSequenceRepository) insertSeeded(ctx context.Context, db *gorm.DB, scope string, seed shared.SeedFunc) (int64, bool, error) {
	var start int64
	if seed != nil {
		n, err := seed(ctx)
		if err != nil {
			return 0, false, fmt.Errorf("seed sequence %s: %w", scope, err)
		}
		start = n
	}
	row := models.IdentifierSequenceModel{
		Scope:     scope,
		LastValue: start + 1,
		Version:   1,
		UpdatedAt: shared.Now(),
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return 0, false, fmt.Errorf("create sequence %s: %w", scope, result.Error)
	}
	return row.LastValue, result.RowsAffected == 1, nil
}

// Current returns the last reserved value, or 0 when the scope is unused
func (r *GormSequenceRepository) Current(ctx context.Context, scope string) (int64, error) {
	var row models.IdentifierSequenceModel
	err := r.db.WithContext(ctx).Where("scope = ?", scope).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read sequence %s: %w", scope, err)
	}
	return row.LastValue, nil
}

var _ shared.SequenceRepository = (*GormSequenceRepository)(nil)
