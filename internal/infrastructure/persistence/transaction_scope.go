package persistence

import (
	"context"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/assetledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTransactionScope implements uow.TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	gormRepositories
}

// NewGormTransactionScope creates a new GormTransactionScope.
// sequenceRetries bounds compare-and-swap attempts per reservation.
func NewGormTransactionScope(db *gorm.DB, sequenceRetries int) *GormTransactionScope {
	return &GormTransactionScope{gormRepositories{db: db, sequenceRetries: sequenceRetries}}
}

// Execute runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos uow.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{db: tx, sequenceRetries: s.sequenceRetries})
	})
}

// gormRepositories builds repositories bound to one *gorm.DB, which is
// either the root connection or an open transaction
type gormRepositories struct {
	db              *gorm.DB
	sequenceRetries int
}

func (r *gormRepositories) Sequences() shared.SequenceRepository {
	return NewGormSequenceRepository(r.db, r.sequenceRetries)
}

func (r *gormRepositories) Members() membership.MemberRepository {
	return NewGormMemberRepository(r.db)
}

func (r *gormRepositories) Companies() membership.CompanyRepository {
	return NewGormCompanyRepository(r.db)
}

func (r *gormRepositories) FeeSettings() fee.SettingRepository {
	return NewGormFeeSettingRepository(r.db)
}

func (r *gormRepositories) FeeRecords() fee.RecordRepository {
	return NewGormFeeRecordRepository(r.db)
}

func (r *gormRepositories) Investments() leasing.InvestmentRepository {
	return NewGormInvestmentRepository(r.db)
}

func (r *gormRepositories) Leases() leasing.LeaseRepository {
	return NewGormLeaseRepository(r.db)
}

func (r *gormRepositories) Payments() leasing.RentalPaymentRepository {
	return NewGormRentalPaymentRepository(r.db)
}

func (r *gormRepositories) Standards() profitshare.StandardRepository {
	return NewGormStandardRepository(r.db)
}

func (r *gormRepositories) Profits() profitshare.MemberProfitRepository {
	return NewGormMemberProfitRepository(r.db)
}

func (r *gormRepositories) Invoices() invoice.Repository {
	return NewGormInvoiceRepository(r.db)
}

// Ensure GormTransactionScope implements TransactionScope
var _ uow.TransactionScope = (*GormTransactionScope)(nil)
