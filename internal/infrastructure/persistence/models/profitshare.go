package models

import (
	"time"

	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StandardModel is the persistence model for profit sharing standards
type StandardModel struct {
	AggregateModel
	InvestmentID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Type         profitshare.StandardType `gorm:"type:varchar(20);not null"`
	Value        decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	MinAmount    *int64
	MaxAmount    *int64
	StartDate    time.Time `gorm:"not null"`
	EndDate      *time.Time
	Description  string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (StandardModel) TableName() string {
	return "profit_sharing_standards"
}

// ToDomain converts the persistence model to a domain Standard
func (m *StandardModel) ToDomain() *profitshare.Standard {
	return &profitshare.Standard{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvestmentID:      m.InvestmentID,
		Type:              m.Type,
		Value:             m.Value,
		MinAmount:         m.MinAmount,
		MaxAmount:         m.MaxAmount,
		StartDate:         localDate(m.StartDate),
		EndDate:           localDatePtr(m.EndDate),
		Description:       m.Description,
	}
}

// StandardModelFromDomain creates a new persistence model from a domain Standard
func StandardModelFromDomain(s *profitshare.Standard) *StandardModel {
	m := &StandardModel{
		InvestmentID: s.InvestmentID,
		Type:         s.Type,
		Value:        s.Value,
		MinAmount:    s.MinAmount,
		MaxAmount:    s.MaxAmount,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		Description:  s.Description,
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}

// MemberProfitModel is the persistence model for member profits
type MemberProfitModel struct {
	AggregateModel
	InvestmentID    uuid.UUID                `gorm:"type:uuid;not null;index"`
	RentalPaymentID uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_member_profits_payment_member,priority:1"`
	StandardID      uuid.UUID                `gorm:"type:uuid;not null"`
	MemberID        uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_member_profits_payment_member,priority:2;index"`
	Year            int                      `gorm:"not null"`
	Month           int                      `gorm:"not null"`
	Amount          int64                    `gorm:"not null"`
	Status          profitshare.ProfitStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	PaidAt          *time.Time
}

// TableName returns the table name for GORM
func (MemberProfitModel) TableName() string {
	return "member_profits"
}

// ToDomain converts the persistence model to a domain MemberProfit
func (m *MemberProfitModel) ToDomain() *profitshare.MemberProfit {
	return &profitshare.MemberProfit{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvestmentID:      m.InvestmentID,
		RentalPaymentID:   m.RentalPaymentID,
		StandardID:        m.StandardID,
		MemberID:          m.MemberID,
		Year:              m.Year,
		Month:             m.Month,
		Amount:            m.Amount,
		Status:            m.Status,
		PaidAt:            localTimePtr(m.PaidAt),
	}
}

// MemberProfitModelFromDomain creates a new persistence model from a domain MemberProfit
func MemberProfitModelFromDomain(p *profitshare.MemberProfit) *MemberProfitModel {
	m := &MemberProfitModel{
		InvestmentID:    p.InvestmentID,
		RentalPaymentID: p.RentalPaymentID,
		StandardID:      p.StandardID,
		MemberID:        p.MemberID,
		Year:            p.Year,
		Month:           p.Month,
		Amount:          p.Amount,
		Status:          p.Status,
		PaidAt:          p.PaidAt,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
