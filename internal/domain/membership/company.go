package membership

import (
	"strings"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
)

// Company is an organisation that owns investments
type Company struct {
	shared.BaseAggregateRoot
	CompanyNo     string
	TaxID         string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

// CompanyContact carries the optional contact fields of a company
type CompanyContact struct {
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

// NewCompany creates a company with an allocated company number
func NewCompany(companyNo, taxID, name string, contact CompanyContact) (*Company, error) {
	if !ValidCode(companyNo) || !strings.HasPrefix(companyNo, CompanyPrefix) {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Company number must look like A001")
	}
	if !valueobject.ValidTaxID(taxID) {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Tax ID must be a valid 8-digit unified business number")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Company name cannot be empty")
	}

	c := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyNo:         companyNo,
		TaxID:             taxID,
		Name:              name,
		ContactPerson:     contact.ContactPerson,
		Phone:             contact.Phone,
		Email:             contact.Email,
		Address:           contact.Address,
	}
	c.AddDomainEvent(NewCompanyRegisteredEvent(c))
	return c, nil
}
