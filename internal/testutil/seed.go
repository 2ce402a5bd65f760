package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/membership"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/assetledger/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// SeedMember stores an active member
func SeedMember(t *testing.T, scope *persistence.GormTransactionScope, memberNo, name string, role membership.Role) *membership.Member {
	t.Helper()
	m, err := membership.NewMember(memberNo, name, role, "", "")
	require.NoError(t, err)
	require.NoError(t, m.Activate())
	require.NoError(t, scope.Members().Create(context.Background(), m))
	return m
}

// SeedLeasedInvestment stores a company with an active immovable investment
// and one lease over the given days
func SeedLeasedInvestment(t *testing.T, scope *persistence.GormTransactionScope, leaseStart, leaseEnd time.Time, rent int64) (*leasing.Investment, *leasing.LeaseItem) {
	t.Helper()
	ctx := context.Background()

	company, err := membership.NewCompany("A001", "22099131", "Harbor Leasing Co.", membership.CompanyContact{})
	require.NoError(t, err)
	require.NoError(t, scope.Companies().Create(ctx, company))

	inv, err := leasing.NewInvestment(company.ID, "Riverside shop", 3_000_000, leaseStart, nil,
		leasing.ImmovableDetail{Address: "No. 12, Minsheng Rd", FloorArea: decimal.NewFromInt(80)})
	require.NoError(t, err)
	require.NoError(t, inv.Activate())
	require.NoError(t, scope.Investments().Create(ctx, inv))

	lease, err := leasing.NewLeaseItem(inv, leasing.TenantInfo{Name: "Chen Bakery"},
		leasing.LeaseTerm{StartDate: leaseStart, EndDate: leaseEnd, RentalAmount: rent}, "")
	require.NoError(t, err)
	require.NoError(t, scope.Leases().Create(ctx, lease))
	return inv, lease
}

// SeedPayment schedules the rent of one month, paid on paidOn unless it is zero
func SeedPayment(t *testing.T, scope *persistence.GormTransactionScope, inv *leasing.Investment, lease *leasing.LeaseItem, year int, month time.Month, paidOn time.Time) *leasing.RentalPayment {
	t.Helper()
	ctx := context.Background()

	period, err := valueobject.NewMonthPeriod(year, int(month))
	require.NoError(t, err)
	p, err := leasing.NewRentalPayment(inv.ID, period, []leasing.LeaseItem{*lease}, nil)
	require.NoError(t, err)
	require.NoError(t, scope.Payments().Create(ctx, p))
	if paidOn.IsZero() {
		return p
	}
	require.NoError(t, p.RecordPayment(valueobject.PaymentMethodBankTransfer, paidOn, paidOn.Add(time.Hour)))
	require.NoError(t, scope.Payments().SaveWithLock(ctx, p))
	return p
}
