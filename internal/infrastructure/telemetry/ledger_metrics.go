package telemetry

import (
	"context"
	"time"

	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/profitshare"
	"github.com/assetledger/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
)

// LedgerMetrics turns domain events and sweep runs into business metrics.
// It subscribes to the event bus as a wildcard handler. Amounts are whole TWD.
type LedgerMetrics struct {
	eventsTotal         *Counter
	rentScheduledTWD    *Counter
	rentReceivedTWD     *Counter
	rentOverdueTotal    *Counter
	feesReceivedTWD     *Counter
	invoicesIssuedTotal *Counter
	profitSharedTWD     *Counter
	sweepTransitions    *Counter
	sweepDuration       *Histogram
}

// NewLedgerMetrics creates the instruments on meter
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	m := &LedgerMetrics{}
	counters := []struct {
		dst              **Counter
		name, desc, unit string
	}{
		{&m.eventsTotal, "assetledger_domain_events_total", "Domain events published", "{events}"},
		{&m.rentScheduledTWD, "assetledger_rent_scheduled_twd_total", "Rent scheduled for collection", "{TWD}"},
		{&m.rentReceivedTWD, "assetledger_rent_received_twd_total", "Rent received", "{TWD}"},
		{&m.rentOverdueTotal, "assetledger_rent_overdue_total", "Rental payments flagged overdue", "{payments}"},
		{&m.feesReceivedTWD, "assetledger_fees_received_twd_total", "Membership fees received", "{TWD}"},
		{&m.invoicesIssuedTotal, "assetledger_invoices_issued_total", "Invoices and receipts issued", "{invoices}"},
		{&m.profitSharedTWD, "assetledger_profit_distributed_twd_total", "Profit distributed to members", "{TWD}"},
		{&m.sweepTransitions, "assetledger_sweep_transitions_total", "Rows moved by the periodic sweeps", "{rows}"},
	}
	for _, c := range counters {
		counter, err := NewCounter(meter, c.name, c.desc, c.unit)
		if err != nil {
			return nil, err
		}
		*c.dst = counter
	}

	var err error
	m.sweepDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "assetledger_sweep_duration_seconds",
		Description: "Duration of sweep runs",
		Unit:        "s",
		Boundaries:  SweepDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Handle records the metrics carried by a domain event
func (m *LedgerMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	m.eventsTotal.Inc(ctx, AttrEventType.String(event.EventType()))

	switch e := event.(type) {
	case *leasing.RentalPaymentScheduledEvent:
		m.rentScheduledTWD.Add(ctx, e.Amount)
	case *leasing.RentalPaymentPaidEvent:
		m.rentReceivedTWD.Add(ctx, e.Amount)
	case *leasing.RentalPaymentOverdueEvent:
		m.rentOverdueTotal.Inc(ctx)
	case *fee.FeeRecordPaidEvent:
		m.feesReceivedTWD.Add(ctx, e.Amount)
	case *invoice.InvoiceIssuedEvent:
		m.invoicesIssuedTotal.Inc(ctx, AttrInvoiceType.String(string(e.Type)))
	case *profitshare.ProfitDistributedEvent:
		m.profitSharedTWD.Add(ctx, e.Total)
	}
	return nil
}

// EventTypes subscribes to every event
func (m *LedgerMetrics) EventTypes() []string {
	return nil
}

// RecordSweep records one sweep run of the given kind
func (m *LedgerMetrics) RecordSweep(ctx context.Context, kind string, changed int, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.sweepTransitions.Add(ctx, int64(changed), AttrSweepKind.String(kind))
	m.sweepDuration.RecordDuration(ctx, elapsed, AttrSweepKind.String(kind), AttrOutcome.String(outcome))
}

// ErrMeterNil is returned when no meter is supplied
var ErrMeterNil = &MetricsError{Op: "NewLedgerMetrics", Err: "meter cannot be nil"}

// MetricsError is a metrics construction error
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

var _ shared.EventHandler = (*LedgerMetrics)(nil)
