package models

import (
	"time"

	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvoiceModel is the persistence model for invoices and receipts
type InvoiceModel struct {
	AggregateModel
	Type          invoice.Type                      `gorm:"type:varchar(20);not null"`
	InvoiceNumber string                            `gorm:"type:varchar(32);not null;uniqueIndex:idx_invoices_number"`
	BuyerName     string                            `gorm:"type:varchar(200);not null"`
	BuyerTaxID    string                            `gorm:"type:varchar(8)"`
	Amount        int64                             `gorm:"not null"`
	TaxAmount     int64                             `gorm:"not null;default:0"`
	PaymentID     uuid.UUID                         `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_payment"`
	InvestmentID  uuid.UUID                         `gorm:"type:uuid;not null;index"`
	Year          int                               `gorm:"not null"`
	Month         int                               `gorm:"not null"`
	PaymentMethod valueobject.PaymentMethod         `gorm:"type:varchar(20)"`
	IssuedAt      time.Time                         `gorm:"not null"`
	Status        invoice.Status                    `gorm:"type:varchar(20);not null;default:'issued'"`
	PrintedCopies datatypes.JSONSlice[invoice.Copy] `gorm:"not null"`
	VoidReason    string                            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *invoice.Invoice {
	copies := make([]invoice.Copy, len(m.PrintedCopies))
	copy(copies, m.PrintedCopies)
	return &invoice.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Type:              m.Type,
		InvoiceNumber:     m.InvoiceNumber,
		BuyerName:         m.BuyerName,
		BuyerTaxID:        m.BuyerTaxID,
		Amount:            m.Amount,
		TaxAmount:         m.TaxAmount,
		PaymentID:         m.PaymentID,
		InvestmentID:      m.InvestmentID,
		Year:              m.Year,
		Month:             m.Month,
		PaymentMethod:     m.PaymentMethod,
		IssuedAt:          m.IssuedAt.In(valueobject.Location),
		Status:            m.Status,
		PrintedCopies:     copies,
		VoidReason:        m.VoidReason,
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(inv *invoice.Invoice) *InvoiceModel {
	copies := datatypes.JSONSlice[invoice.Copy]{}
	copies = append(copies, inv.PrintedCopies...)
	m := &InvoiceModel{
		Type:          inv.Type,
		InvoiceNumber: inv.InvoiceNumber,
		BuyerName:     inv.BuyerName,
		BuyerTaxID:    inv.BuyerTaxID,
		Amount:        inv.Amount,
		TaxAmount:     inv.TaxAmount,
		PaymentID:     inv.PaymentID,
		InvestmentID:  inv.InvestmentID,
		Year:          inv.Year,
		Month:         inv.Month,
		PaymentMethod: inv.PaymentMethod,
		IssuedAt:      inv.IssuedAt,
		Status:        inv.Status,
		PrintedCopies: copies,
		VoidReason:    inv.VoidReason,
	}
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	return m
}
