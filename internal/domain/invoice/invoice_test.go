package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidPayment(amount int64) *leasing.RentalPayment {
	paidOn := time.Date(2026, 3, 20, 0, 0, 0, 0, valueobject.Location)
	return &leasing.RentalPayment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvestmentID:      uuid.New(),
		Year:              2026,
		Month:             3,
		Amount:            amount,
		Status:            leasing.PaymentStatusPaid,
		PaymentMethod:     valueobject.PaymentMethodBankTransfer,
		PaymentDate:       &paidOn,
	}
}

func issuedAt() time.Time {
	return time.Date(2026, 3, 21, 10, 0, 0, 0, valueobject.Location)
}

func TestFormatNumber(t *testing.T) {
	n, err := FormatNumber(TypeInvoice3, 2026, 42)
	require.NoError(t, err)
	assert.Equal(t, "IT-2026-00042", n)

	n, err = FormatNumber(TypeReceipt, 2026, 1)
	require.NoError(t, err)
	assert.Equal(t, "RC-2026-00001", n)

	_, err = FormatNumber(TypeInvoice2, 2026, MaxNumberSequence+1)
	assert.True(t, shared.IsCode(err, shared.CodeSequenceExhausted))

	assert.Equal(t, "invoice:invoice2:2026", NumberScope(TypeInvoice2, 2026))
}

func TestIncludedTax(t *testing.T) {
	assert.Equal(t, int64(500), IncludedTax(10500))
	assert.Equal(t, int64(1429), IncludedTax(30000))
	assert.Equal(t, int64(0), IncludedTax(0))
}

func TestNewInvoice(t *testing.T) {
	t.Run("three-part invoice keeps tax id and splits tax", func(t *testing.T) {
		inv, err := NewInvoice(paidPayment(10500), BuyerInfo{Name: "宏達資產", TaxID: "04595257"}, TypeInvoice3, "it-2026-00001", issuedAt())
		require.NoError(t, err)
		assert.Equal(t, "IT-2026-00001", inv.InvoiceNumber)
		assert.Equal(t, "04595257", inv.BuyerTaxID)
		assert.Equal(t, int64(500), inv.TaxAmount)
		assert.Equal(t, int64(10000), inv.SalesAmount())
		assert.Equal(t, StatusIssued, inv.Status)
	})

	t.Run("three-part invoice requires valid tax id", func(t *testing.T) {
		_, err := NewInvoice(paidPayment(10500), BuyerInfo{Name: "宏達資產", TaxID: "12345678"}, TypeInvoice3, "X1", issuedAt())
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})

	t.Run("receipt drops tax id and carries no tax", func(t *testing.T) {
		inv, err := NewInvoice(paidPayment(10500), BuyerInfo{Name: "林小姐", TaxID: "04595257"}, TypeReceipt, "RC-2026-00001", issuedAt())
		require.NoError(t, err)
		assert.Empty(t, inv.BuyerTaxID)
		assert.Equal(t, int64(0), inv.TaxAmount)
	})

	t.Run("payment must be paid", func(t *testing.T) {
		p := paidPayment(100)
		p.Status = leasing.PaymentStatusOverdue
		_, err := NewInvoice(p, BuyerInfo{Name: "林"}, TypeReceipt, "RC-1", issuedAt())
		assert.True(t, shared.IsCode(err, shared.CodePaymentNotPaid))
	})

	t.Run("rejects malformed number and unknown type", func(t *testing.T) {
		_, err := NewInvoice(paidPayment(100), BuyerInfo{Name: "林"}, TypeReceipt, "no spaces allowed", issuedAt())
		assert.Error(t, err)
		_, err = NewInvoice(paidPayment(100), BuyerInfo{Name: "林"}, Type("invoice4"), "X1", issuedAt())
		assert.Error(t, err)
	})

	t.Run("number fits the column width", func(t *testing.T) {
		longest := "N" + strings.Repeat("0", MaxNumberLength-1)
		inv, err := NewInvoice(paidPayment(100), BuyerInfo{Name: "林"}, TypeReceipt, longest, issuedAt())
		require.NoError(t, err)
		assert.Len(t, inv.InvoiceNumber, MaxNumberLength)

		_, err = NewInvoice(paidPayment(100), BuyerInfo{Name: "林"}, TypeReceipt, longest+"1", issuedAt())
		assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))
	})
}

func TestInvoice_PrintAndVoid(t *testing.T) {
	inv, err := NewInvoice(paidPayment(100), BuyerInfo{Name: "林"}, TypeInvoice2, "II-2026-00001", issuedAt())
	require.NoError(t, err)

	require.NoError(t, inv.MarkPrinted(CopyReceipt))
	require.NoError(t, inv.MarkPrinted(CopyReceipt))
	assert.Equal(t, []Copy{CopyReceipt}, inv.PrintedCopies)
	assert.Equal(t, StatusPrinted, inv.Status)

	err = inv.Void("typo")
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition), "printed invoices are immutable")

	fresh, err := NewInvoice(paidPayment(100), BuyerInfo{Name: "林"}, TypeInvoice2, "II-2026-00002", issuedAt())
	require.NoError(t, err)
	require.NoError(t, fresh.Void("issued to wrong buyer"))
	assert.Equal(t, StatusVoid, fresh.Status)
	assert.Error(t, fresh.MarkPrinted(CopyStub))
}
