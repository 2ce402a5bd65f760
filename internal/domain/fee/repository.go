package fee

import (
	"context"

	"github.com/google/uuid"
)

// SettingRepository defines the interface for fee setting persistence
type SettingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Setting, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Setting, error)
	Save(ctx context.Context, setting *Setting) error
}

// RecordRepository defines the interface for fee record persistence
type RecordRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]Record, error)
	ExistsForPeriod(ctx context.Context, memberID uuid.UUID, period string) (bool, error)
	// Create inserts a record. A (member, period) collision returns
	// shared.CodeDuplicatePeriod.
	Create(ctx context.Context, record *Record) error
	SaveWithLock(ctx context.Context, record *Record) error
}
