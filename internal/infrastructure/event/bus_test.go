package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testEvent struct {
	shared.BaseDomainEvent
	Data string `json:"data"`
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "RentalPayment", uuid.New()),
		Data:            "march rent",
	}
}

type testHandler struct {
	eventTypes []string
	handled    []shared.DomainEvent
	err        error
	panics     bool
	mu         sync.Mutex
}

func newTestHandler(eventTypes ...string) *testHandler {
	return &testHandler{eventTypes: eventTypes}
}

func (h *testHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	if h.panics {
		panic("boom")
	}
	return h.err
}

func (h *testHandler) EventTypes() []string {
	return h.eventTypes
}

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := newTestHandler("RentalPaymentPaid")
	bus.Subscribe(handler)

	event := newTestEvent("RentalPaymentPaid")
	require.NoError(t, bus.Publish(context.Background(), event, newTestEvent("RentalPaymentPaid")))

	assert.Equal(t, 2, handler.count())
	assert.Equal(t, event, handler.handled[0])
}

func TestInMemoryEventBus_RoutesByType(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	paid := newTestHandler()
	other := newTestHandler()
	all := newTestHandler()
	bus.Subscribe(paid, "RentalPaymentPaid")
	bus.Subscribe(other, "InvoiceIssued")
	bus.Subscribe(all)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("RentalPaymentPaid")))

	assert.Equal(t, 1, paid.count())
	assert.Equal(t, 0, other.count())
	assert.Equal(t, 1, all.count())
}

func TestInMemoryEventBus_HandlerFailuresAreContained(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := NewInMemoryEventBus(zap.New(core))

	failing := newTestHandler("InvoiceIssued")
	failing.err = errors.New("handler error")
	panicking := newTestHandler("InvoiceIssued")
	panicking.panics = true
	healthy := newTestHandler("InvoiceIssued")
	bus.Subscribe(failing)
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newTestEvent("InvoiceIssued"))

	require.NoError(t, err)
	assert.Equal(t, 1, healthy.count())
	published, failed := bus.Stats()
	assert.Equal(t, int64(1), published)
	assert.Equal(t, int64(2), failed)
	assert.Equal(t, 1, logs.FilterMessage("Event handler panicked").Len())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := newTestHandler("LeaseCreated")
	bus.Subscribe(handler)

	_ = bus.Publish(context.Background(), newTestEvent("LeaseCreated"))
	bus.Unsubscribe(handler)
	_ = bus.Publish(context.Background(), newTestEvent("LeaseCreated"))

	assert.Equal(t, 1, handler.count())
	assert.Equal(t, 0, bus.registry.Count())
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	ctx := context.Background()
	require.NoError(t, bus.Start(ctx))
	assert.True(t, bus.running.Load())
	require.NoError(t, bus.Stop(ctx))
	assert.False(t, bus.running.Load())
}

func TestAuditLogHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := NewInMemoryEventBus(zap.NewNop())
	bus.Subscribe(NewAuditLogHandler(zap.New(core)))

	event := newTestEvent("RentalPaymentOverdue")
	require.NoError(t, bus.Publish(context.Background(), event))

	entries := logs.FilterMessage("Domain event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "RentalPaymentOverdue", fields["event_type"])
	assert.Equal(t, event.AggregateID().String(), fields["aggregate_id"])
	assert.Contains(t, fields["payload"], "march rent")
}
