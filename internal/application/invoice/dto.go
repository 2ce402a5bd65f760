package invoice

import (
	"time"

	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/google/uuid"
)

// IssueInvoiceRequest issues the document of a paid rental payment.
// An empty InvoiceNumber takes the next number of the type's yearly sequence.
type IssueInvoiceRequest struct {
	BuyerName     string `json:"buyer_name" binding:"required,min=1,max=100"`
	BuyerTaxID    string `json:"buyer_tax_id" binding:"omitempty,max=20"`
	Type          string `json:"type" binding:"required,oneof=invoice2 invoice3 receipt"`
	InvoiceNumber string `json:"invoice_number" binding:"omitempty,max=32"`
}

// PrintInvoiceRequest records a printed copy
type PrintInvoiceRequest struct {
	Copy string `json:"copy" binding:"required,oneof=stub receipt accounting"`
}

// VoidInvoiceRequest voids an unprinted invoice
type VoidInvoiceRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// InvoiceResponse is the API view of an invoice
type InvoiceResponse struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	InvoiceNumber string     `json:"invoice_number"`
	BuyerName     string     `json:"buyer_name"`
	BuyerTaxID    string     `json:"buyer_tax_id,omitempty"`
	Amount        int64      `json:"amount"`
	TaxAmount     int64      `json:"tax_amount"`
	PaymentID     uuid.UUID  `json:"payment_id"`
	InvestmentID  uuid.UUID  `json:"investment_id"`
	Year          int        `json:"year"`
	Month         int        `json:"month"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	IssuedAt      time.Time  `json:"issued_at"`
	Status        string     `json:"status"`
	PrintedCopies []string   `json:"printed_copies"`
	VoidReason    string     `json:"void_reason,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ToInvoiceResponse converts a domain invoice
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	copies := make([]string, len(inv.PrintedCopies))
	for i, c := range inv.PrintedCopies {
		copies[i] = string(c)
	}
	resp := InvoiceResponse{
		ID:            inv.ID,
		Type:          string(inv.Type),
		InvoiceNumber: inv.InvoiceNumber,
		BuyerName:     inv.BuyerName,
		BuyerTaxID:    inv.BuyerTaxID,
		Amount:        inv.Amount,
		TaxAmount:     inv.TaxAmount,
		PaymentID:     inv.PaymentID,
		InvestmentID:  inv.InvestmentID,
		Year:          inv.Year,
		Month:         inv.Month,
		PaymentMethod: string(inv.PaymentMethod),
		IssuedAt:      inv.IssuedAt,
		Status:        string(inv.Status),
		PrintedCopies: copies,
		VoidReason:    inv.VoidReason,
	}
	if !inv.UpdatedAt.IsZero() {
		updated := inv.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
