package leasing

import (
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, valueobject.Location)
}

func newActiveInvestment(t *testing.T) *Investment {
	t.Helper()
	inv, err := NewInvestment(uuid.New(), "信義區店面", 12_000_000, day(2025, 1, 1), nil,
		ImmovableDetail{Address: "台北市信義區松仁路100號", FloorArea: decimal.NewFromInt(35)})
	require.NoError(t, err)
	require.NoError(t, inv.Activate())
	return inv
}

func newLease(t *testing.T, inv *Investment, start, end time.Time, rent int64) *LeaseItem {
	t.Helper()
	l, err := NewLeaseItem(inv, TenantInfo{Name: "林先生"}, LeaseTerm{StartDate: start, EndDate: end, RentalAmount: rent}, "")
	require.NoError(t, err)
	return l
}
