package uow

import (
	"context"

	"github.com/assetledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Events collects the domain events raised by aggregates inside a unit of
// work so they are published only after the transaction commits
type Events struct {
	pending []shared.DomainEvent
	sources []string
}

// Collect takes the pending events of each aggregate and clears them
func (e *Events) Collect(aggregates ...shared.AggregateRoot) {
	for _, agg := range aggregates {
		raised := agg.GetDomainEvents()
		if len(raised) == 0 {
			continue
		}
		e.pending = append(e.pending, raised...)
		e.sources = append(e.sources, agg.GetID().String())
		agg.ClearDomainEvents()
	}
}

// Len returns the number of collected events
func (e *Events) Len() int {
	return len(e.pending)
}

// Publish hands the collected events to publisher. The state change has
// already committed, so a publish failure is logged and not returned.
func (e *Events) Publish(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger) {
	defer func() {
		e.pending = nil
		e.sources = nil
	}()
	if publisher == nil || len(e.pending) == 0 {
		return
	}
	if err := publisher.Publish(ctx, e.pending...); err != nil {
		logger.Warn("Failed to publish domain events",
			zap.Int("count", len(e.pending)),
			zap.Strings("aggregate_ids", e.sources),
			zap.Error(err),
		)
	}
}
