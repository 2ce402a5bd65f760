// Package uow defines the transaction boundary shared by the application services.
package uow

import (
	"context"

	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/assetledger/backend/internal/domain/shared"
)

// Repositories gives access to every repository. Repositories handed to an
// Execute callback share that callback's transaction.
type Repositories interface {
	Sequences() shared.SequenceRepository
	Members() membership.MemberRepository
	Companies() membership.CompanyRepository
	FeeSettings() fee.SettingRepository
	FeeRecords() fee.RecordRepository
	Investments() leasing.InvestmentRepository
	Leases() leasing.LeaseRepository
	Payments() leasing.RentalPaymentRepository
	Standards() profitshare.StandardRepository
	Profits() profitshare.MemberProfitRepository
	Invoices() invoice.Repository
}

// TransactionScope runs units of work atomically. The embedded Repositories
// are not transactional and serve read paths and sequence reservations.
type TransactionScope interface {
	Repositories
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}
