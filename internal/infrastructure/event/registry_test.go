package event

import (
	"testing"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestHandlerRegistry_SpecificTypes(t *testing.T) {
	registry := NewHandlerRegistry()
	handler := newTestHandler()

	registry.Register(handler, "RentalPaymentPaid", "RentalPaymentOverdue")

	assert.Equal(t, []shared.EventHandler{handler}, registry.GetHandlers("RentalPaymentPaid"))
	assert.Equal(t, []shared.EventHandler{handler}, registry.GetHandlers("RentalPaymentOverdue"))
	assert.Empty(t, registry.GetHandlers("InvoiceIssued"))
	assert.Equal(t, 1, registry.Count())
}

func TestHandlerRegistry_WildcardComesAfterSpecific(t *testing.T) {
	registry := NewHandlerRegistry()
	specific := newTestHandler()
	wildcard := newTestHandler()

	registry.Register(wildcard)
	registry.Register(specific, "InvoiceIssued")

	assert.Equal(t, []shared.EventHandler{specific, wildcard}, registry.GetHandlers("InvoiceIssued"))
	assert.Equal(t, []shared.EventHandler{wildcard}, registry.GetHandlers("MemberRegistered"))
	assert.Equal(t, 2, registry.Count())
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	registry := NewHandlerRegistry()
	first := newTestHandler()
	second := newTestHandler()
	wildcard := newTestHandler()

	registry.Register(first, "FeeRecordPaid")
	registry.Register(second, "FeeRecordPaid")
	registry.Register(wildcard)

	registry.Unregister(first)
	registry.Unregister(wildcard)

	assert.Equal(t, []shared.EventHandler{second}, registry.GetHandlers("FeeRecordPaid"))
	assert.Equal(t, 1, registry.Count())

	registry.Unregister(second)
	assert.Empty(t, registry.GetHandlers("FeeRecordPaid"))
	assert.Zero(t, registry.Count())
}
