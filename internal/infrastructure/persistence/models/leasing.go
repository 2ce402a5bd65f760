package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvestmentModel is the persistence model for the Investment aggregate.
// The variant payload is stored as JSON and discriminated by Type.
type InvestmentModel struct {
	AggregateModel
	CompanyID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	Name        string                   `gorm:"type:varchar(200);not null"`
	Type        leasing.InvestmentType   `gorm:"type:varchar(20);not null"`
	Status      leasing.InvestmentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Amount      int64                    `gorm:"not null"`
	StartDate   time.Time                `gorm:"not null"`
	EndDate     *time.Time
	Description string         `gorm:"type:text"`
	Detail      datatypes.JSON `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToDomain converts the persistence model to a domain Investment
func (m *InvestmentModel) ToDomain() (*leasing.Investment, error) {
	detail, err := decodeAssetDetail(m.Type, m.Detail)
	if err != nil {
		return nil, err
	}
	return &leasing.Investment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CompanyID:         m.CompanyID,
		Name:              m.Name,
		Status:            m.Status,
		Amount:            m.Amount,
		StartDate:         localDate(m.StartDate),
		EndDate:           localDatePtr(m.EndDate),
		Description:       m.Description,
		Detail:            detail,
	}, nil
}

// InvestmentModelFromDomain creates a new persistence model from a domain Investment
func InvestmentModelFromDomain(inv *leasing.Investment) (*InvestmentModel, error) {
	raw, err := json.Marshal(inv.Detail)
	if err != nil {
		return nil, fmt.Errorf("encode investment detail: %w", err)
	}
	m := &InvestmentModel{
		CompanyID:   inv.CompanyID,
		Name:        inv.Name,
		Type:        inv.Type(),
		Status:      inv.Status,
		Amount:      inv.Amount,
		StartDate:   inv.StartDate,
		EndDate:     inv.EndDate,
		Description: inv.Description,
		Detail:      datatypes.JSON(raw),
	}
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	return m, nil
}

func decodeAssetDetail(t leasing.InvestmentType, raw datatypes.JSON) (leasing.AssetDetail, error) {
	switch t {
	case leasing.InvestmentTypeMovable:
		var d leasing.MovableDetail
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode movable detail: %w", err)
		}
		return d, nil
	case leasing.InvestmentTypeImmovable:
		var d leasing.ImmovableDetail
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode immovable detail: %w", err)
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown investment type %q", t)
}

// LeaseItemModel is the persistence model for lease items
type LeaseItemModel struct {
	AggregateModel
	InvestmentID      uuid.UUID                              `gorm:"type:uuid;not null;index"`
	TenantInfo        datatypes.JSONType[leasing.TenantInfo] `gorm:"not null"`
	StartDate         time.Time                              `gorm:"not null"`
	EndDate           time.Time                              `gorm:"not null;index"`
	RentalAmount      int64                                  `gorm:"not null"`
	Status            leasing.LeaseStatus                    `gorm:"type:varchar(20);not null;default:'active';index"`
	TerminationDate   *time.Time
	TerminatedAt      *time.Time
	ProfitSharingNote string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LeaseItemModel) TableName() string {
	return "lease_items"
}

// ToDomain converts the persistence model to a domain LeaseItem
func (m *LeaseItemModel) ToDomain() *leasing.LeaseItem {
	return &leasing.LeaseItem{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvestmentID:      m.InvestmentID,
		Tenant:            m.TenantInfo.Data(),
		StartDate:         localDate(m.StartDate),
		EndDate:           localDate(m.EndDate),
		RentalAmount:      m.RentalAmount,
		Status:            m.Status,
		TerminationDate:   localDatePtr(m.TerminationDate),
		TerminatedAt:      localTimePtr(m.TerminatedAt),
		ProfitSharingNote: m.ProfitSharingNote,
	}
}

// LeaseItemModelFromDomain creates a new persistence model from a domain LeaseItem
func LeaseItemModelFromDomain(l *leasing.LeaseItem) *LeaseItemModel {
	m := &LeaseItemModel{
		InvestmentID:      l.InvestmentID,
		TenantInfo:        datatypes.NewJSONType(l.Tenant),
		StartDate:         l.StartDate,
		EndDate:           l.EndDate,
		RentalAmount:      l.RentalAmount,
		Status:            l.Status,
		TerminationDate:   l.TerminationDate,
		TerminatedAt:      l.TerminatedAt,
		ProfitSharingNote: l.ProfitSharingNote,
	}
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	return m
}

// RentalPaymentModel is the persistence model for rental payments
type RentalPaymentModel struct {
	AggregateModel
	InvestmentID   uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_rental_payments_period,priority:1"`
	Year           int                       `gorm:"not null;uniqueIndex:idx_rental_payments_period,priority:2"`
	Month          int                       `gorm:"not null;uniqueIndex:idx_rental_payments_period,priority:3"`
	Amount         int64                     `gorm:"not null"`
	LeaseStartDate time.Time                 `gorm:"not null"`
	DueDate        time.Time                 `gorm:"not null;index"`
	Status         leasing.PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentMethod  valueobject.PaymentMethod `gorm:"type:varchar(20)"`
	PaymentDate    *time.Time
	Note           string `gorm:"type:text"`
	CancelReason   string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (RentalPaymentModel) TableName() string {
	return "rental_payments"
}

// ToDomain converts the persistence model to a domain RentalPayment
func (m *RentalPaymentModel) ToDomain() *leasing.RentalPayment {
	return &leasing.RentalPayment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvestmentID:      m.InvestmentID,
		Year:              m.Year,
		Month:             m.Month,
		Amount:            m.Amount,
		LeaseStartDate:    localDate(m.LeaseStartDate),
		DueDate:           localDate(m.DueDate),
		Status:            m.Status,
		PaymentMethod:     m.PaymentMethod,
		PaymentDate:       localDatePtr(m.PaymentDate),
		Note:              m.Note,
		CancelReason:      m.CancelReason,
	}
}

// RentalPaymentModelFromDomain creates a new persistence model from a domain RentalPayment
func RentalPaymentModelFromDomain(p *leasing.RentalPayment) *RentalPaymentModel {
	m := &RentalPaymentModel{
		InvestmentID:   p.InvestmentID,
		Year:           p.Year,
		Month:          p.Month,
		Amount:         p.Amount,
		LeaseStartDate: p.LeaseStartDate,
		DueDate:        p.DueDate,
		Status:         p.Status,
		PaymentMethod:  p.PaymentMethod,
		PaymentDate:    p.PaymentDate,
		Note:           p.Note,
		CancelReason:   p.CancelReason,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
