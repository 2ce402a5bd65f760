package invoice

import (
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventTypeInvoiceIssued is raised when an invoice number is assigned to a payment
const EventTypeInvoiceIssued = "InvoiceIssued"

// InvoiceIssuedEvent is raised once per payment
type InvoiceIssuedEvent struct {
	shared.BaseDomainEvent
	InvoiceNumber string    `json:"invoice_number"`
	Type          Type      `json:"type"`
	PaymentID     uuid.UUID `json:"payment_id"`
	Amount        int64     `json:"amount"`
}

// NewInvoiceIssuedEvent creates a new InvoiceIssuedEvent
func NewInvoiceIssuedEvent(inv *Invoice) *InvoiceIssuedEvent {
	return &InvoiceIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceIssued, "Invoice", inv.ID),
		InvoiceNumber:   inv.InvoiceNumber,
		Type:            inv.Type,
		PaymentID:       inv.PaymentID,
		Amount:          inv.Amount,
	}
}
