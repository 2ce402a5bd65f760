package models

import (
	"time"

	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// FeeSettingModel is the persistence model for fee settings
type FeeSettingModel struct {
	AggregateModel
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     int64           `gorm:"not null"`
	PeriodKind fee.PeriodKind  `gorm:"column:period_kind;type:varchar(20);not null"`
	MemberRole membership.Role `gorm:"type:varchar(20);not null"`
	Active     bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (FeeSettingModel) TableName() string {
	return "fee_settings"
}

// ToDomain converts the persistence model to a domain fee Setting
func (m *FeeSettingModel) ToDomain() *fee.Setting {
	return &fee.Setting{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Amount:            m.Amount,
		PeriodKind:        m.PeriodKind,
		MemberRole:        m.MemberRole,
		Active:            m.Active,
	}
}

// FeeSettingModelFromDomain creates a new persistence model from a domain Setting
func FeeSettingModelFromDomain(s *fee.Setting) *FeeSettingModel {
	m := &FeeSettingModel{
		Name:       s.Name,
		Amount:     s.Amount,
		PeriodKind: s.PeriodKind,
		MemberRole: s.MemberRole,
		Active:     s.Active,
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}

// FeeRecordModel is the persistence model for fee records. Only pending,
// paid and cancelled are ever written to Status.
type FeeRecordModel struct {
	AggregateModel
	MemberID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_fee_records_member_period,priority:1"`
	SettingID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Period        string     `gorm:"type:varchar(16);not null;uniqueIndex:idx_fee_records_member_period,priority:2"`
	Amount        int64      `gorm:"not null"`
	DueDate       time.Time  `gorm:"not null"`
	Status        fee.Status `gorm:"type:varchar(20);not null;default:'pending'"`
	PaidDate      *time.Time
	PaymentMethod valueobject.PaymentMethod `gorm:"type:varchar(20)"`
	CancelReason  string                    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (FeeRecordModel) TableName() string {
	return "fee_records"
}

// ToDomain converts the persistence model to a domain fee Record
func (m *FeeRecordModel) ToDomain() *fee.Record {
	return &fee.Record{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		MemberID:          m.MemberID,
		SettingID:         m.SettingID,
		Period:            m.Period,
		Amount:            m.Amount,
		DueDate:           localDate(m.DueDate),
		Status:            m.Status,
		PaidDate:          localDatePtr(m.PaidDate),
		PaymentMethod:     m.PaymentMethod,
		CancelReason:      m.CancelReason,
	}
}

// FromDomain populates the persistence model from a domain Record.
// A derived overdue status is never persisted.
func (m *FeeRecordModel) FromDomain(r *fee.Record) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.MemberID = r.MemberID
	m.SettingID = r.SettingID
	m.Period = r.Period
	m.Amount = r.Amount
	m.DueDate = r.DueDate
	m.Status = r.Status
	if m.Status == fee.StatusOverdue {
		m.Status = fee.StatusPending
	}
	m.PaidDate = r.PaidDate
	m.PaymentMethod = r.PaymentMethod
	m.CancelReason = r.CancelReason
}

// FeeRecordModelFromDomain creates a new persistence model from a domain Record
func FeeRecordModelFromDomain(r *fee.Record) *FeeRecordModel {
	m := &FeeRecordModel{}
	m.FromDomain(r)
	return m
}
