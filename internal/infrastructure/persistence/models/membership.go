package models

import (
	"time"

	"github.com/assetledger/backend/internal/domain/membership"
)

// MemberModel is the persistence model for the Member aggregate
type MemberModel struct {
	AggregateModel
	MemberNo    string                  `gorm:"type:varchar(8);not null;uniqueIndex:idx_members_member_no"`
	Name        string                  `gorm:"type:varchar(200);not null"`
	Email       string                  `gorm:"type:varchar(200)"`
	Phone       string                  `gorm:"type:varchar(50)"`
	Role        membership.Role         `gorm:"type:varchar(20);not null;index"`
	Status      membership.MemberStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	ActivatedAt *time.Time
	DisabledAt  *time.Time
}

// TableName returns the table name for GORM
func (MemberModel) TableName() string {
	return "members"
}

// ToDomain converts the persistence model to a domain Member
func (m *MemberModel) ToDomain() *membership.Member {
	return &membership.Member{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		MemberNo:          m.MemberNo,
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		Role:              m.Role,
		Status:            m.Status,
		ActivatedAt:       localTimePtr(m.ActivatedAt),
		DisabledAt:        localTimePtr(m.DisabledAt),
	}
}

// FromDomain populates the persistence model from a domain Member
func (m *MemberModel) FromDomain(member *membership.Member) {
	m.FromDomainAggregateRoot(member.BaseAggregateRoot)
	m.MemberNo = member.MemberNo
	m.Name = member.Name
	m.Email = member.Email
	m.Phone = member.Phone
	m.Role = member.Role
	m.Status = member.Status
	m.ActivatedAt = member.ActivatedAt
	m.DisabledAt = member.DisabledAt
}

// MemberModelFromDomain creates a new persistence model from a domain Member
func MemberModelFromDomain(member *membership.Member) *MemberModel {
	m := &MemberModel{}
	m.FromDomain(member)
	return m
}

// CompanyModel is the persistence model for the Company aggregate
type CompanyModel struct {
	AggregateModel
	CompanyNo     string `gorm:"type:varchar(8);not null;uniqueIndex:idx_companies_company_no"`
	TaxID         string `gorm:"type:varchar(8);not null;uniqueIndex:idx_companies_tax_id"`
	Name          string `gorm:"type:varchar(200);not null"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Phone         string `gorm:"type:varchar(50)"`
	Email         string `gorm:"type:varchar(200)"`
	Address       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company
func (m *CompanyModel) ToDomain() *membership.Company {
	return &membership.Company{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CompanyNo:         m.CompanyNo,
		TaxID:             m.TaxID,
		Name:              m.Name,
		ContactPerson:     m.ContactPerson,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
	}
}

// FromDomain populates the persistence model from a domain Company
func (m *CompanyModel) FromDomain(c *membership.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CompanyNo = c.CompanyNo
	m.TaxID = c.TaxID
	m.Name = c.Name
	m.ContactPerson = c.ContactPerson
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
}

// CompanyModelFromDomain creates a new persistence model from a domain Company
func CompanyModelFromDomain(c *membership.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}
