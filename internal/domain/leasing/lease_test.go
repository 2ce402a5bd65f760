package leasing

import (
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeaseItem(t *testing.T) {
	inv := newActiveInvestment(t)

	t.Run("creates active lease", func(t *testing.T) {
		l := newLease(t, inv, day(2026, 1, 1), day(2026, 12, 31), 30000)
		assert.Equal(t, LeaseStatusActive, l.Status)
		assert.Equal(t, inv.ID, l.InvestmentID)
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := NewLeaseItem(inv, TenantInfo{Name: "林"}, LeaseTerm{
			StartDate: day(2026, 5, 1), EndDate: day(2026, 5, 1), RentalAmount: 100,
		}, "")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidDateRange))
	})

	t.Run("investment must be active", func(t *testing.T) {
		pending := newActiveInvestment(t)
		pending.Status = InvestmentStatusPending
		_, err := NewLeaseItem(pending, TenantInfo{Name: "林"}, LeaseTerm{
			StartDate: day(2026, 1, 1), EndDate: day(2026, 2, 1), RentalAmount: 100,
		}, "")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInvestmentState))
	})

	t.Run("missing investment", func(t *testing.T) {
		_, err := NewLeaseItem(nil, TenantInfo{Name: "林"}, LeaseTerm{}, "")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInvestmentState))
	})

	t.Run("rent must be positive", func(t *testing.T) {
		_, err := NewLeaseItem(inv, TenantInfo{Name: "林"}, LeaseTerm{
			StartDate: day(2026, 1, 1), EndDate: day(2026, 2, 1),
		}, "")
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})
}

func TestLeaseItem_Terminate(t *testing.T) {
	inv := newActiveInvestment(t)
	l := newLease(t, inv, day(2026, 1, 1), day(2026, 12, 31), 30000)

	require.NoError(t, l.Terminate(day(2026, 6, 1)))
	assert.Equal(t, LeaseStatusTerminated, l.Status)
	assert.Equal(t, "2026-06-01", valueobject.FormatDate(*l.TerminationDate))

	err := l.Terminate(day(2026, 7, 1))
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition))
}

func TestLeaseItem_Expire(t *testing.T) {
	inv := newActiveInvestment(t)
	l := newLease(t, inv, day(2026, 1, 1), day(2026, 3, 31), 30000)

	assert.False(t, l.Expire(day(2026, 3, 31).Add(23*time.Hour)), "lease is live through its end date")
	assert.True(t, l.Expire(day(2026, 4, 1)))
	assert.Equal(t, LeaseStatusExpired, l.Status)
	assert.False(t, l.Expire(day(2026, 4, 2)), "second expiry is a no-op")

	terminated := newLease(t, inv, day(2026, 1, 1), day(2026, 3, 31), 30000)
	require.NoError(t, terminated.Terminate(day(2026, 2, 1)))
	assert.False(t, terminated.Expire(day(2026, 5, 1)))
	assert.Equal(t, LeaseStatusTerminated, terminated.Status)
}

func TestLeaseItem_Covers(t *testing.T) {
	inv := newActiveInvestment(t)
	l := newLease(t, inv, day(2026, 1, 15), day(2026, 6, 14), 30000)

	assert.False(t, l.Covers(valueobject.MonthPeriod{Year: 2025, Month: 12}))
	assert.True(t, l.Covers(valueobject.MonthPeriod{Year: 2026, Month: 1}))
	assert.True(t, l.Covers(valueobject.MonthPeriod{Year: 2026, Month: 6}))
	assert.False(t, l.Covers(valueobject.MonthPeriod{Year: 2026, Month: 7}))

	require.NoError(t, l.Terminate(day(2026, 3, 1)))
	assert.True(t, l.Covers(valueobject.MonthPeriod{Year: 2026, Month: 2}))
	assert.False(t, l.Covers(valueobject.MonthPeriod{Year: 2026, Month: 3}))
}
