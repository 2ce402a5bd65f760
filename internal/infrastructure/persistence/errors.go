package persistence

import (
	"errors"
	"fmt"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notFoundOr maps gorm.ErrRecordNotFound to a NOT_FOUND domain error and
// wraps anything else
func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewDomainError(shared.CodeNotFound, entity+" not found")
	}
	return fmt.Errorf("find %s: %w", entity, err)
}

// duplicateOr maps a translated unique violation to the given conflict code
func duplicateOr(err error, code, message, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewDomainError(code, message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// createIsolated inserts value inside a nested transaction. Within an outer
// transaction gorm turns that into a savepoint, so a unique violation rolls
// back only the insert and the outer transaction stays usable on postgres.
func createIsolated(db *gorm.DB, value any) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(value).Error
	})
}

// saveVersioned applies fields to the row only if it is still at the version
// the aggregate was loaded with. The aggregate has already been touched, so
// that is one below its current version.
func saveVersioned(db *gorm.DB, model any, id uuid.UUID, version int, fields map[string]any, entity string) error {
	result := db.Model(model).
		Where("id = ? AND version = ?", id, version-1).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("save %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError(shared.CodeConcurrencyConflict,
			fmt.Sprintf("%s was modified by another process", entity))
	}
	return nil
}
