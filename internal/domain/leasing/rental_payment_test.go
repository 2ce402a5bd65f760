package leasing

import (
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRentalPayment(t *testing.T) {
	inv := newActiveInvestment(t)
	a := newLease(t, inv, day(2026, 1, 1), day(2026, 12, 31), 30000)
	b := newLease(t, inv, day(2026, 3, 10), day(2027, 3, 9), 12000)
	march := valueobject.MonthPeriod{Year: 2026, Month: 3}

	t.Run("sums covering leases and defaults due date to month end", func(t *testing.T) {
		p, err := NewRentalPayment(inv.ID, march, []LeaseItem{*a, *b}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(42000), p.Amount)
		assert.Equal(t, "2026-03-31", valueobject.FormatDate(p.DueDate))
		assert.Equal(t, "2026-01-01", valueobject.FormatDate(p.LeaseStartDate))
		assert.Equal(t, PaymentStatusPending, p.Status)
	})

	t.Run("explicit due date wins", func(t *testing.T) {
		due := day(2026, 3, 10)
		p, err := NewRentalPayment(inv.ID, march, []LeaseItem{*a}, &due)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", valueobject.FormatDate(p.DueDate))
	})

	t.Run("no covering lease", func(t *testing.T) {
		_, err := NewRentalPayment(inv.ID, valueobject.MonthPeriod{Year: 2025, Month: 12}, []LeaseItem{*a, *b}, nil)
		assert.True(t, shared.IsCode(err, shared.CodeNoActiveLease))
	})

	t.Run("leases of other investments are ignored", func(t *testing.T) {
		_, err := NewRentalPayment(uuid.New(), march, []LeaseItem{*a}, nil)
		assert.True(t, shared.IsCode(err, shared.CodeNoActiveLease))
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := NewRentalPayment(inv.ID, valueobject.MonthPeriod{Year: 2026, Month: 13}, []LeaseItem{*a}, nil)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})
}

func newMarchPayment(t *testing.T) *RentalPayment {
	t.Helper()
	inv := newActiveInvestment(t)
	l := newLease(t, inv, day(2026, 1, 1), day(2026, 12, 31), 30000)
	p, err := NewRentalPayment(inv.ID, valueobject.MonthPeriod{Year: 2026, Month: 3}, []LeaseItem{*l}, nil)
	require.NoError(t, err)
	return p
}

func TestRentalPayment_RecordPayment(t *testing.T) {
	now := day(2026, 4, 10).Add(10 * time.Hour)

	t.Run("pending to paid", func(t *testing.T) {
		p := newMarchPayment(t)
		require.NoError(t, p.RecordPayment(valueobject.PaymentMethodBankTransfer, day(2026, 3, 25), now))
		assert.Equal(t, PaymentStatusPaid, p.Status)
		assert.Equal(t, valueobject.PaymentMethodBankTransfer, p.PaymentMethod)
	})

	t.Run("overdue to paid", func(t *testing.T) {
		p := newMarchPayment(t)
		require.True(t, p.MarkOverdue(now))
		require.NoError(t, p.RecordPayment(valueobject.PaymentMethodCash, day(2026, 4, 9), now))
		assert.Equal(t, PaymentStatusPaid, p.Status)
	})

	t.Run("paid cannot be paid again", func(t *testing.T) {
		p := newMarchPayment(t)
		require.NoError(t, p.RecordPayment(valueobject.PaymentMethodCash, day(2026, 3, 25), now))
		err := p.RecordPayment(valueobject.PaymentMethodCash, day(2026, 3, 26), now)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition))
	})

	t.Run("cancelled cannot be paid", func(t *testing.T) {
		p := newMarchPayment(t)
		require.NoError(t, p.Cancel("tenant waived"))
		err := p.RecordPayment(valueobject.PaymentMethodCash, day(2026, 3, 25), now)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition))
	})

	t.Run("date before lease start", func(t *testing.T) {
		p := newMarchPayment(t)
		err := p.RecordPayment(valueobject.PaymentMethodCash, day(2025, 12, 31), now)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidPaymentDate))
		assert.Equal(t, PaymentStatusPending, p.Status)
	})

	t.Run("date in the future", func(t *testing.T) {
		p := newMarchPayment(t)
		err := p.RecordPayment(valueobject.PaymentMethodCash, now.Add(time.Hour), now)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidPaymentDate))
	})

	t.Run("unknown method", func(t *testing.T) {
		p := newMarchPayment(t)
		err := p.RecordPayment("crypto", day(2026, 3, 25), now)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})
}

func TestRentalPayment_MarkOverdue(t *testing.T) {
	p := newMarchPayment(t)

	assert.False(t, p.MarkOverdue(day(2026, 3, 31).Add(20*time.Hour)))
	assert.True(t, p.MarkOverdue(day(2026, 4, 1)))
	assert.Equal(t, PaymentStatusOverdue, p.Status)
	assert.False(t, p.MarkOverdue(day(2026, 4, 2)), "already overdue")

	paid := newMarchPayment(t)
	require.NoError(t, paid.RecordPayment(valueobject.PaymentMethodCash, day(2026, 3, 1), day(2026, 3, 2)))
	assert.False(t, paid.MarkOverdue(day(2026, 5, 1)))
	assert.Equal(t, PaymentStatusPaid, paid.Status)
}

func TestSummarize(t *testing.T) {
	a := newMarchPayment(t)
	b := newMarchPayment(t)
	require.NoError(t, b.RecordPayment(valueobject.PaymentMethodCash, day(2026, 3, 1), day(2026, 3, 2)))

	s := Summarize([]RentalPayment{*a, *b})
	assert.Equal(t, 1, s.Counts[PaymentStatusPending])
	assert.Equal(t, int64(30000), s.Totals[PaymentStatusPaid])
}
