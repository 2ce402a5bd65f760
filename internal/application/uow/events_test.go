package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/assetledger/backend/internal/application/uow"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/assetledger/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type ledgerEntry struct {
	shared.BaseAggregateRoot
}

func newEntry(eventTypes ...string) *ledgerEntry {
	e := &ledgerEntry{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	for _, t := range eventTypes {
		ev := shared.NewBaseDomainEvent(t, "LedgerEntry", e.ID)
		e.AddDomainEvent(&ev)
	}
	return e
}

func TestEvents_PublishesInCollectOrder(t *testing.T) {
	publisher := testutil.NewRecordingPublisher()
	first := newEntry("EntryOpened", "EntryPosted")
	second := newEntry("EntryClosed")
	untouched := newEntry()

	var events uow.Events
	events.Collect(first, untouched, second)
	assert.Equal(t, 3, events.Len())
	assert.Empty(t, first.GetDomainEvents(), "collected events are cleared from the aggregate")

	events.Publish(context.Background(), publisher, zap.NewNop())
	assert.Equal(t, []string{"EntryOpened", "EntryPosted", "EntryClosed"}, publisher.Types())
	assert.Zero(t, events.Len())

	publisher.Reset()
	events.Publish(context.Background(), publisher, zap.NewNop())
	assert.Empty(t, publisher.Events(), "nothing left to publish")
}

func TestEvents_PublishFailureIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	publisher := testutil.NewRecordingPublisher()
	publisher.SetError(errors.New("bus closed"))
	entry := newEntry("EntryPosted")

	var events uow.Events
	events.Collect(entry)
	events.Publish(context.Background(), publisher, zap.New(core))

	require.Equal(t, 1, logs.Len())
	logged := logs.All()[0]
	assert.Equal(t, "Failed to publish domain events", logged.Message)
	assert.Equal(t, []interface{}{entry.GetID().String()}, logged.ContextMap()["aggregate_ids"])
	assert.Zero(t, events.Len())
}

func TestEvents_NilPublisherDropsEvents(t *testing.T) {
	var events uow.Events
	events.Collect(newEntry("EntryPosted"))
	events.Publish(context.Background(), nil, zap.NewNop())
	assert.Zero(t, events.Len())
}
