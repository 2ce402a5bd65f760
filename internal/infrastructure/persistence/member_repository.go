package persistence

import (
	"context"
	"fmt"

	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMemberRepository implements membership.MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// FindByID finds a member by its ID
func (r *GormMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Member")
	}
	return model.ToDomain(), nil
}

// FindByMemberNo finds a member by member number
func (r *GormMemberRepository) FindByMemberNo(ctx context.Context, memberNo string) (*membership.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).Where("member_no = ?", memberNo).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Member")
	}
	return model.ToDomain(), nil
}

// FindAll lists members matching the filter and returns the unpaged total
func (r *GormMemberRepository) FindAll(ctx context.Context, filter membership.MemberFilter) ([]membership.Member, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MemberModel{})
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	var rows []models.MemberModel
	query = query.Order(orderClause(filter.OrderBy, MemberSortFields, "member_no", filter.OrderDir))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}

	members := make([]membership.Member, len(rows))
	for i := range rows {
		members[i] = *rows[i].ToDomain()
	}
	return members, total, nil
}

// Create inserts a new member
func (r *GormMemberRepository) Create(ctx context.Context, member *membership.Member) error {
	if err := r.db.WithContext(ctx).Create(models.MemberModelFromDomain(member)).Error; err != nil {
		return duplicateOr(err, shared.CodeDuplicateCode,
			fmt.Sprintf("Member number %s is already in use", member.MemberNo), "create member")
	}
	return nil
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormMemberRepository) SaveWithLock(ctx context.Context, member *membership.Member) error {
	return saveVersioned(r.db.WithContext(ctx), &models.MemberModel{}, member.ID, member.Version, map[string]any{
		"name":         member.Name,
		"email":        member.Email,
		"phone":        member.Phone,
		"status":       member.Status,
		"activated_at": member.ActivatedAt,
		"disabled_at":  member.DisabledAt,
		"version":      member.Version,
		"updated_at":   member.UpdatedAt,
	}, "Member")
}

// CountByNoPrefix counts members whose number starts with prefix
func (r *GormMemberRepository) CountByNoPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MemberModel{}).
		Where("member_no LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return count, nil
}

// GormCompanyRepository implements membership.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Company")
	}
	return model.ToDomain(), nil
}

// FindByTaxID finds a company by its unified business number
func (r *GormCompanyRepository) FindByTaxID(ctx context.Context, taxID string) (*membership.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).Where("tax_id = ?", taxID).Take(&model).Error; err != nil {
		return nil, notFoundOr(err, "Company")
	}
	return model.ToDomain(), nil
}

// FindAll lists companies and returns the unpaged total
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	var rows []models.CompanyModel
	query = query.Order(orderClause(filter.OrderBy, CompanySortFields, "company_no", filter.OrderDir))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}

	companies := make([]membership.Company, len(rows))
	for i := range rows {
		companies[i] = *rows[i].ToDomain()
	}
	return companies, total, nil
}

// Create inserts a new company. A tax ID already on file is reported as
// DUPLICATE_TAX_ID; any other unique violation is a company number collision.
func (r *GormCompanyRepository) Create(ctx context.Context, company *membership.Company) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("tax_id = ?", company.TaxID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check tax id: %w", err)
	}
	if count > 0 {
		return shared.NewDomainError(shared.CodeDuplicateTaxID,
			fmt.Sprintf("Tax ID %s is already registered", company.TaxID))
	}
	if err := r.db.WithContext(ctx).Create(models.CompanyModelFromDomain(company)).Error; err != nil {
		return duplicateOr(err, shared.CodeDuplicateCode,
			fmt.Sprintf("Company number %s is already in use", company.CompanyNo), "create company")
	}
	return nil
}

// ExistsByID reports whether a company exists
func (r *GormCompanyRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check company: %w", err)
	}
	return count > 0, nil
}

// CountByNoPrefix counts companies whose number starts with prefix
func (r *GormCompanyRepository) CountByNoPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("company_no LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return count, nil
}

var (
	_ membership.MemberRepository  = (*GormMemberRepository)(nil)
	_ membership.CompanyRepository = (*GormCompanyRepository)(nil)
)
