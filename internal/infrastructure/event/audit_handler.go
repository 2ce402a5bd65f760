package event

import (
	"context"
	"encoding/json"

	"github.com/assetledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AuditLogHandler writes every domain event to the log with its JSON payload,
// leaving a trail of each financial state change
type AuditLogHandler struct {
	logger *zap.Logger
}

// NewAuditLogHandler creates a handler that logs under the "audit" name
func NewAuditLogHandler(logger *zap.Logger) *AuditLogHandler {
	return &AuditLogHandler{logger: logger.Named("audit")}
}

// Handle logs the event
func (h *AuditLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	h.logger.Info("Domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
		zap.ByteString("payload", payload),
	)
	return nil
}

// EventTypes subscribes to all events
func (h *AuditLogHandler) EventTypes() []string {
	return nil
}
