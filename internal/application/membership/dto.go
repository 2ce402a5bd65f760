package membership

import (
	"time"

	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/google/uuid"
)

// AllocateIdentifierRequest asks for the next code of a category
type AllocateIdentifierRequest struct {
	Category     string `json:"category" binding:"required,oneof=member company"`
	Discriminant string `json:"discriminant"`
}

// IdentifierResponse carries an allocated code
type IdentifierResponse struct {
	Code string `json:"code"`
}

// RegisterMemberRequest represents a request to register a member
type RegisterMemberRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Role  string `json:"role" binding:"required,oneof=admin normal lifetime business"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
}

// MemberResponse is the API view of a member
type MemberResponse struct {
	ID          uuid.UUID  `json:"id"`
	MemberNo    string     `json:"member_no"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	DisabledAt  *time.Time `json:"disabled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// ToMemberResponse converts a domain member
func ToMemberResponse(m *membership.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		MemberNo:    m.MemberNo,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Role:        string(m.Role),
		Status:      string(m.Status),
		ActivatedAt: m.ActivatedAt,
		DisabledAt:  m.DisabledAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Version:     m.Version,
	}
}

// MemberListFilter narrows member listings
type MemberListFilter struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin normal lifetime business"`
	Status   string `form:"status" binding:"omitempty,oneof=pending active disabled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// RegisterCompanyRequest represents a request to register a company
type RegisterCompanyRequest struct {
	TaxID         string `json:"tax_id" binding:"required,taxid"`
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"omitempty,max=100"`
	Phone         string `json:"phone" binding:"omitempty,max=30"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address" binding:"omitempty,max=300"`
}

// CompanyResponse is the API view of a company
type CompanyResponse struct {
	ID            uuid.UUID `json:"id"`
	CompanyNo     string    `json:"company_no"`
	TaxID         string    `json:"tax_id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToCompanyResponse converts a domain company
func ToCompanyResponse(c *membership.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		CompanyNo:     c.CompanyNo,
		TaxID:         c.TaxID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
	}
}
