package invoice

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the kind of document issued for a payment
type Type string

const (
	TypeInvoice2 Type = "invoice2" // 二聯式統一發票
	TypeInvoice3 Type = "invoice3" // 三聯式統一發票
	TypeReceipt  Type = "receipt"  // 收據
)

// IsValid checks if the type is known
func (t Type) IsValid() bool {
	return t == TypeInvoice2 || t == TypeInvoice3 || t == TypeReceipt
}

// IsTaxInvoice returns true for uniform invoices that carry business tax
func (t Type) IsTaxInvoice() bool {
	return t == TypeInvoice2 || t == TypeInvoice3
}

// Title returns the printed document title
func (t Type) Title() string {
	switch t {
	case TypeInvoice2:
		return "統一發票（二聯式）"
	case TypeInvoice3:
		return "統一發票（三聯式）"
	default:
		return "收據"
	}
}

// numberPrefix is the leading code of auto-generated numbers per type
func (t Type) numberPrefix() string {
	switch t {
	case TypeInvoice2:
		return "II"
	case TypeInvoice3:
		return "IT"
	default:
		return "RC"
	}
}

// Status represents the lifecycle of an invoice
type Status string

const (
	StatusIssued  Status = "issued"
	StatusPrinted Status = "printed"
	StatusVoid    Status = "void"
)

// TaxRatePercent is the business tax rate included in uniform invoice totals
const TaxRatePercent = 5

// MaxNumberSequence is the largest per-year sequence an auto number can hold
const MaxNumberSequence = 99999

// MaxNumberLength matches the width of the invoice_number column
const MaxNumberLength = 32

var numberPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{0,31}$`)

// NumberScope names the counter used for auto numbers of a type in a year
func NumberScope(t Type, year int) string {
	return fmt.Sprintf("invoice:%s:%d", t, year)
}

// FormatNumber renders an auto number such as IT-2026-00042
func FormatNumber(t Type, year int, seq int64) (string, error) {
	if seq < 1 {
		return "", shared.NewDomainError(shared.CodeInvalidInput, "Invoice sequence must be positive")
	}
	if seq > MaxNumberSequence {
		return "", shared.NewDomainError(shared.CodeSequenceExhausted,
			fmt.Sprintf("Invoice numbers for %s in %d are exhausted", t, year))
	}
	return fmt.Sprintf("%s-%04d-%05d", t.numberPrefix(), year, seq), nil
}

// BuyerInfo identifies who the invoice is issued to
type BuyerInfo struct {
	Name  string
	TaxID string
}

// Invoice is the printable document issued once per rental payment.
// Printed invoices are immutable.
type Invoice struct {
	shared.BaseAggregateRoot
	Type          Type
	InvoiceNumber string
	BuyerName     string
	BuyerTaxID    string
	Amount        int64
	TaxAmount     int64
	PaymentID     uuid.UUID
	InvestmentID  uuid.UUID
	Year          int
	Month         int
	PaymentMethod valueobject.PaymentMethod
	IssuedAt      time.Time
	Status        Status
	PrintedCopies []Copy
	VoidReason    string
}

// SalesAmount is the amount before business tax
func (i *Invoice) SalesAmount() int64 {
	return i.Amount - i.TaxAmount
}

// IncludedTax splits the business tax out of a tax-inclusive total
func IncludedTax(total int64) int64 {
	sales := decimal.NewFromInt(total).Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(100 + TaxRatePercent)).Round(0).IntPart()
	return total - sales
}

// NewInvoice issues a document for a paid rental payment under number
func NewInvoice(payment *leasing.RentalPayment, buyer BuyerInfo, t Type, number string, issuedAt time.Time) (*Invoice, error) {
	if payment == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Payment is required")
	}
	if payment.Status != leasing.PaymentStatusPaid {
		return nil, shared.NewDomainError(shared.CodePaymentNotPaid,
			fmt.Sprintf("Cannot invoice a payment in %s status", payment.Status))
	}
	if !t.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown invoice type %q", t))
	}
	number = strings.ToUpper(strings.TrimSpace(number))
	if !numberPattern.MatchString(number) {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Invoice number must be 1-%d letters, digits or dashes", MaxNumberLength))
	}
	buyer.Name = strings.TrimSpace(buyer.Name)
	if buyer.Name == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Buyer name is required")
	}
	if t == TypeInvoice3 {
		if !valueobject.ValidTaxID(buyer.TaxID) {
			return nil, shared.NewDomainError(shared.CodeInvalidInput, "Three-part invoices require a valid buyer tax ID")
		}
	} else {
		buyer.TaxID = ""
	}

	inv := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              t,
		InvoiceNumber:     number,
		BuyerName:         buyer.Name,
		BuyerTaxID:        buyer.TaxID,
		Amount:            payment.Amount,
		PaymentID:         payment.ID,
		InvestmentID:      payment.InvestmentID,
		Year:              payment.Year,
		Month:             payment.Month,
		PaymentMethod:     payment.PaymentMethod,
		IssuedAt:          issuedAt,
		Status:            StatusIssued,
		PrintedCopies:     []Copy{},
	}
	if t.IsTaxInvoice() {
		inv.TaxAmount = IncludedTax(payment.Amount)
	}
	inv.AddDomainEvent(NewInvoiceIssuedEvent(inv))
	return inv, nil
}

// MarkPrinted records that a copy was printed. Reprinting a copy is allowed.
func (i *Invoice) MarkPrinted(c Copy) error {
	if !c.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown copy %q", c))
	}
	if i.Status == StatusVoid {
		return shared.NewDomainError(shared.CodeInvalidTransition, "Cannot print a void invoice")
	}
	for _, printed := range i.PrintedCopies {
		if printed == c {
			return nil
		}
	}
	i.PrintedCopies = append(i.PrintedCopies, c)
	i.Status = StatusPrinted
	i.Touch()
	return nil
}

// Void cancels an invoice that has not been printed yet
func (i *Invoice) Void(reason string) error {
	if i.Status != StatusIssued {
		return shared.NewDomainError(shared.CodeInvalidTransition,
			fmt.Sprintf("Cannot void invoice in %s status", i.Status))
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Void reason is required")
	}
	i.Status = StatusVoid
	i.VoidReason = reason
	i.Touch()
	return nil
}
