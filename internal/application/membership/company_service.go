package membership

import (
	"context"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyService handles company registration
type CompanyService struct {
	scope       uow.TransactionScope
	identifiers *IdentifierService
	publisher   shared.EventPublisher
	logger      *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(scope uow.TransactionScope, identifiers *IdentifierService, publisher shared.EventPublisher, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		scope:       scope,
		identifiers: identifiers,
		publisher:   publisher,
		logger:      logger,
	}
}

// Register allocates a company number and stores the company.
// A tax ID that is already registered fails before a number is consumed.
func (s *CompanyService) Register(ctx context.Context, req RegisterCompanyRequest) (*CompanyResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "company", "register")
	defer span.End()

	if existing, err := s.scope.Companies().FindByTaxID(ctx, req.TaxID); err == nil && existing != nil {
		return nil, shared.NewDomainError(shared.CodeDuplicateTaxID, "Tax ID "+req.TaxID+" is already registered")
	} else if err != nil && !shared.IsCode(err, shared.CodeNotFound) {
		telemetry.RecordError(span, err)
		return nil, err
	}

	contact := membership.CompanyContact{
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	}
	var company *membership.Company
	for attempt := 1; ; attempt++ {
		companyNo, err := s.identifiers.Allocate(ctx, membership.IdentifierCategoryCompany, "")
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		company, err = membership.NewCompany(companyNo, req.TaxID, req.Name, contact)
		if err != nil {
			return nil, err
		}

		err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
			return repos.Companies().Create(ctx, company)
		})
		if err == nil {
			break
		}
		if shared.IsCode(err, shared.CodeDuplicateCode) && attempt < maxRegisterAttempts {
			s.logger.Warn("Company number collided, retrying with a new number",
				zap.String("company_no", companyNo),
				zap.Int("attempt", attempt),
			)
			continue
		}
		telemetry.RecordError(span, err)
		return nil, err
	}

	var events uow.Events
	events.Collect(company)
	events.Publish(ctx, s.publisher, s.logger)
	s.logger.Info("Company registered",
		zap.String("company_id", company.ID.String()),
		zap.String("company_no", company.CompanyNo),
	)
	resp := ToCompanyResponse(company)
	return &resp, nil
}

// GetByID returns a company
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.scope.Companies().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCompanyResponse(company)
	return &resp, nil
}

// List returns a page of companies ordered by company number
func (s *CompanyService) List(ctx context.Context, page, pageSize int) (shared.Paginated[CompanyResponse], error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "company_no"
	filter.OrderDir = "asc"
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	companies, total, err := s.scope.Companies().FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[CompanyResponse]{}, err
	}
	items := make([]CompanyResponse, len(companies))
	for i := range companies {
		items[i] = ToCompanyResponse(&companies[i])
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}
