package membership

import (
	"context"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MemberFilter defines filtering options for member queries
type MemberFilter struct {
	shared.Filter
	Role   *Role
	Status *MemberStatus
}

// MemberRepository defines the interface for member persistence
type MemberRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	FindByMemberNo(ctx context.Context, memberNo string) (*Member, error)
	FindAll(ctx context.Context, filter MemberFilter) ([]Member, int64, error)
	// Create inserts a new member. A member number collision returns
	// an error carrying shared.CodeDuplicateCode.
	Create(ctx context.Context, member *Member) error
	// SaveWithLock updates with an optimistic version check
	SaveWithLock(ctx context.Context, member *Member) error
	// CountByNoPrefix counts members whose number starts with prefix
	CountByNoPrefix(ctx context.Context, prefix string) (int64, error)
}

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByTaxID(ctx context.Context, taxID string) (*Company, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Company, int64, error)
	// Create inserts a new company. A company number collision returns
	// shared.CodeDuplicateCode and a tax ID collision shared.CodeDuplicateTaxID.
	Create(ctx context.Context, company *Company) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	CountByNoPrefix(ctx context.Context, prefix string) (int64, error)
}
