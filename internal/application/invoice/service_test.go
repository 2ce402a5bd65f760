package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/infrastructure/persistence"
	"github.com/assetledger/backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	service    *Service
	scope      *persistence.GormTransactionScope
	events     *testutil.RecordingPublisher
	investment *leasing.Investment
	lease      *leasing.LeaseItem
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	scope := testutil.NewTestScope(t)
	events := testutil.NewRecordingPublisher()
	clock := testutil.NewClock(testutil.Day(2026, time.March, 21).Add(10 * time.Hour))

	service := NewService(scope, events, zap.NewNop())
	service.SetClock(clock.Now)

	inv, lease := testutil.SeedLeasedInvestment(t, scope,
		testutil.Day(2026, time.January, 1), testutil.Day(2026, time.December, 31), 31500)
	return fixture{service: service, scope: scope, events: events, investment: inv, lease: lease}
}

func (f fixture) paid(t *testing.T, month time.Month) uuid.UUID {
	t.Helper()
	return testutil.SeedPayment(t, f.scope, f.investment, f.lease, 2026, month, testutil.Day(2026, month, 5)).ID
}

func TestService_IssueAutoNumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jan, feb, mar := f.paid(t, time.January), f.paid(t, time.February), f.paid(t, time.March)

	first, err := f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2"})
	require.NoError(t, err)
	assert.Equal(t, "II-2026-00001", first.InvoiceNumber)
	assert.Equal(t, int64(31500), first.Amount)
	assert.Equal(t, int64(1500), first.TaxAmount)
	assert.Equal(t, "issued", first.Status)
	assert.Equal(t, 1, first.Month)

	three, err := f.service.Issue(ctx, feb, IssueInvoiceRequest{BuyerName: "宏達資產", BuyerTaxID: "04595257", Type: "invoice3"})
	require.NoError(t, err)
	assert.Equal(t, "IT-2026-00001", three.InvoiceNumber, "each type has its own sequence")
	assert.Equal(t, "04595257", three.BuyerTaxID)

	receipt, err := f.service.Issue(ctx, mar, IssueInvoiceRequest{BuyerName: "林小姐", BuyerTaxID: "04595257", Type: "receipt"})
	require.NoError(t, err)
	assert.Equal(t, "RC-2026-00001", receipt.InvoiceNumber)
	assert.Empty(t, receipt.BuyerTaxID, "receipts ignore the buyer tax ID")
	assert.Zero(t, receipt.TaxAmount)

	assert.Equal(t, 3, f.events.Count(invoice.EventTypeInvoiceIssued))
}

func TestService_IssueOncePerPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jan := f.paid(t, time.January)

	first, err := f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2"})
	require.NoError(t, err)

	_, err = f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "Someone else", Type: "receipt"})
	assert.True(t, shared.IsCode(err, shared.CodeAlreadyInvoiced))

	stored, err := f.service.GetByPayment(ctx, jan)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "王先生", stored.BuyerName)
	assert.Equal(t, "invoice2", stored.Type)
	assert.Equal(t, 1, f.events.Count(invoice.EventTypeInvoiceIssued))
}

func TestService_IssueManualNumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jan, feb, mar := f.paid(t, time.January), f.paid(t, time.February), f.paid(t, time.March)

	manual, err := f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2", InvoiceNumber: "ii-2026-00001"})
	require.NoError(t, err)
	assert.Equal(t, "II-2026-00001", manual.InvoiceNumber)

	_, err = f.service.Issue(ctx, feb, IssueInvoiceRequest{BuyerName: "王先生", Type: "receipt", InvoiceNumber: "II-2026-00001"})
	assert.True(t, shared.IsCode(err, shared.CodeDuplicateCode))

	auto, err := f.service.Issue(ctx, mar, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2"})
	require.NoError(t, err)
	assert.Equal(t, "II-2026-00002", auto.InvoiceNumber, "a manually used number is skipped")
}

func TestService_IssueRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pending := testutil.SeedPayment(t, f.scope, f.investment, f.lease, 2026, time.February, time.Time{})
	_, err := f.service.Issue(ctx, pending.ID, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2"})
	assert.True(t, shared.IsCode(err, shared.CodePaymentNotPaid))

	_, err = f.service.Issue(ctx, uuid.New(), IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2"})
	assert.True(t, shared.IsCode(err, shared.CodeNotFound))

	jan := f.paid(t, time.January)
	_, err = f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "宏達資產", BuyerTaxID: "1234", Type: "invoice3"})
	assert.True(t, shared.IsCode(err, shared.CodeInvalidInput), "three-part invoices need a valid tax ID")

	_, err = f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice9"})
	assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))

	_, err = f.service.GetByPayment(ctx, jan)
	assert.True(t, shared.IsCode(err, shared.CodeNotFound), "rejected issues store nothing")
}

func TestService_Render(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jan := f.paid(t, time.January)
	issued, err := f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "宏達資產", BuyerTaxID: "04595257", Type: "invoice3"})
	require.NoError(t, err)

	r, err := f.service.Render(ctx, issued.ID, "accounting")
	require.NoError(t, err)
	assert.Equal(t, "記帳聯", r.CopyLabel)
	assert.Equal(t, "IT-2026-00001", r.InvoiceNumber)
	assert.Equal(t, "2026-03-21", r.IssueDate)
	assert.Contains(t, r.Lines, invoice.Line{Label: "總計", Value: "NT$31,500"})
	assert.Contains(t, r.Lines, invoice.Line{Label: "統一編號", Value: "04595257"})

	_, err = f.service.Render(ctx, issued.ID, "duplicate")
	assert.True(t, shared.IsCode(err, shared.CodeInvalidInput))

	_, err = f.service.Render(ctx, uuid.New(), "stub")
	assert.True(t, shared.IsCode(err, shared.CodeNotFound))

	got, err := f.service.GetByID(ctx, issued.ID)
	require.NoError(t, err)
	assert.Equal(t, "issued", got.Status, "rendering does not change the invoice")
}

func TestService_PrintAndVoid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	jan, feb := f.paid(t, time.January), f.paid(t, time.February)

	printed, err := f.service.Issue(ctx, jan, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2"})
	require.NoError(t, err)

	got, err := f.service.MarkPrinted(ctx, printed.ID, PrintInvoiceRequest{Copy: "receipt"})
	require.NoError(t, err)
	assert.Equal(t, "printed", got.Status)
	assert.Equal(t, []string{"receipt"}, got.PrintedCopies)

	got, err = f.service.MarkPrinted(ctx, printed.ID, PrintInvoiceRequest{Copy: "receipt"})
	require.NoError(t, err, "reprinting a copy is allowed")
	assert.Equal(t, []string{"receipt"}, got.PrintedCopies)

	got, err = f.service.MarkPrinted(ctx, printed.ID, PrintInvoiceRequest{Copy: "stub"})
	require.NoError(t, err)
	assert.Equal(t, []string{"receipt", "stub"}, got.PrintedCopies)

	_, err = f.service.Void(ctx, printed.ID, VoidInvoiceRequest{Reason: "typo"})
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition), "printed invoices are immutable")

	voided, err := f.service.Issue(ctx, feb, IssueInvoiceRequest{BuyerName: "王先生", Type: "invoice2"})
	require.NoError(t, err)
	got, err = f.service.Void(ctx, voided.ID, VoidInvoiceRequest{Reason: "wrong buyer"})
	require.NoError(t, err)
	assert.Equal(t, "void", got.Status)
	assert.Equal(t, "wrong buyer", got.VoidReason)

	_, err = f.service.MarkPrinted(ctx, voided.ID, PrintInvoiceRequest{Copy: "stub"})
	assert.True(t, shared.IsCode(err, shared.CodeInvalidTransition))
}
