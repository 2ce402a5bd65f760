package models

import "time"

// IdentifierSequenceModel is a per-scope counter advanced by compare-and-swap
// on Version
type IdentifierSequenceModel struct {
	Scope     string    `gorm:"type:varchar(64);primary_key"`
	LastValue int64     `gorm:"not null;default:0"`
	Version   int64     `gorm:"not null;default:1"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (IdentifierSequenceModel) TableName() string {
	return "identifier_sequences"
}

// AllModels lists every persistence model, in dependency order, for
// AutoMigrate in tests
func AllModels() []any {
	return []any{
		&IdentifierSequenceModel{},
		&MemberModel{},
		&CompanyModel{},
		&FeeSettingModel{},
		&FeeRecordModel{},
		&InvestmentModel{},
		&LeaseItemModel{},
		&RentalPaymentModel{},
		&StandardModel{},
		&MemberProfitModel{},
		&InvoiceModel{},
	}
}
