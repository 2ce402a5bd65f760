package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(r Rendered) []string {
	out := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, l.Label)
	}
	return out
}

func valueOf(r Rendered, label string) string {
	for _, l := range r.Lines {
		if l.Label == label {
			return l.Value
		}
	}
	return ""
}

func TestRender_Invoice3(t *testing.T) {
	inv, err := NewInvoice(paidPayment(31500), BuyerInfo{Name: "宏達資產", TaxID: "04595257"}, TypeInvoice3, "IT-2026-00001", issuedAt())
	require.NoError(t, err)

	r, err := Render(inv, CopyAccounting)
	require.NoError(t, err)
	assert.Equal(t, "統一發票（三聯式）", r.Title)
	assert.Equal(t, "記帳聯", r.CopyLabel)
	assert.Equal(t, "2026-03-21", r.IssueDate)
	assert.Equal(t, "04595257", valueOf(r, "統一編號"))
	assert.Equal(t, "NT$30,000", valueOf(r, "銷售額"))
	assert.Equal(t, "NT$1,500", valueOf(r, "營業稅"))
	assert.Equal(t, "NT$31,500", valueOf(r, "總計"))
	assert.Equal(t, "參萬壹仟伍佰元整", valueOf(r, "總計新臺幣（大寫）"))
	assert.Equal(t, "銀行轉帳", valueOf(r, "付款方式"))
	assert.Equal(t, []string{SignatoryHandler, SignatoryAccountant, SignatoryChiefAccounts}, r.Signatories)

	stub, err := Render(inv, CopyStub)
	require.NoError(t, err)
	assert.Equal(t, "存根聯", stub.CopyLabel)
	assert.Contains(t, stub.Signatories, SignatoryAccountant)
}

func TestRender_ReceiptHidesTaxIDAndAccountants(t *testing.T) {
	inv, err := NewInvoice(paidPayment(12000), BuyerInfo{Name: "林小姐"}, TypeReceipt, "RC-2026-00001", issuedAt())
	require.NoError(t, err)
	// Even a tax id forced onto the record must not be printed
	inv.BuyerTaxID = "04595257"

	for _, c := range []Copy{CopyStub, CopyReceipt, CopyAccounting} {
		r, err := Render(inv, c)
		require.NoError(t, err)
		assert.NotContains(t, labels(r), "統一編號", c)
		assert.NotContains(t, r.Signatories, SignatoryAccountant, c)
		assert.NotContains(t, r.Signatories, SignatoryChiefAccounts, c)
		assert.NotContains(t, labels(r), "營業稅", c)
	}
}

func TestRender_Invoice2OmitsTaxLines(t *testing.T) {
	inv, err := NewInvoice(paidPayment(10500), BuyerInfo{Name: "王先生"}, TypeInvoice2, "II-2026-00001", issuedAt())
	require.NoError(t, err)

	r, err := Render(inv, CopyReceipt)
	require.NoError(t, err)
	assert.NotContains(t, labels(r), "統一編號")
	assert.NotContains(t, labels(r), "銷售額")
	assert.Equal(t, "NT$10,500", valueOf(r, "總計"))
	assert.Equal(t, []string{SignatoryHandler}, r.Signatories)
}

func TestRender_IsPure(t *testing.T) {
	inv, err := NewInvoice(paidPayment(10500), BuyerInfo{Name: "王先生"}, TypeInvoice2, "II-2026-00001", issuedAt())
	require.NoError(t, err)
	version := inv.Version

	first, err := Render(inv, CopyStub)
	require.NoError(t, err)
	second, err := Render(inv, CopyStub)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, version, inv.Version)
	assert.Equal(t, StatusIssued, inv.Status)

	_, err = Render(inv, Copy("duplicate"))
	assert.Error(t, err)
}

func TestChineseUppercase(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "零元整"},
		{5, "伍元整"},
		{1010, "壹仟零壹拾元整"},
		{10005, "壹萬零伍元整"},
		{12345, "壹萬貳仟參佰肆拾伍元整"},
		{100000000, "壹億元整"},
		{100010000, "壹億零壹萬元整"},
		{2030400, "貳佰零參萬零肆佰元整"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ChineseUppercase(tt.amount), "%d", tt.amount)
	}
}
