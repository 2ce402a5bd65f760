package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/assetledger/backend/internal/domain/fee"
	"github.com/assetledger/backend/internal/domain/invoice"
	"github.com/assetledger/backend/internal/domain/leasing"
	"github.com/assetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newManualMeter(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return reader, provider
}

// sumOf returns the total of an int64 counter across data points matching attrs
func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	want := attribute.NewSet(attrs...)
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				if len(attrs) == 0 || dp.Attributes.Equals(&want) {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestDisabledProvidersAreNoops(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	tp, err := NewTracerProvider(ctx, Config{ServiceName: "assetledger"}, log)
	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())
	tp.EnableSpanProfiles()
	assert.False(t, tp.SpanProfilesEnabled())
	assert.NoError(t, tp.ForceFlush(ctx))
	assert.NoError(t, tp.Shutdown(ctx))

	mp, err := NewMeterProvider(ctx, MetricsConfig{ServiceName: "assetledger"}, log)
	require.NoError(t, err)
	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test"))
	assert.NoError(t, mp.Shutdown(ctx))

	lp, err := NewLoggerProvider(ctx, LogsConfig{ServiceName: "assetledger"}, log)
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())
	assert.False(t, lp.ZapCore(zapcore.InfoLevel).Enabled(zapcore.ErrorLevel))
	assert.NoError(t, lp.Shutdown(ctx))

	p, err := NewProfiler(ProfilerConfig{}, log)
	require.NoError(t, err)
	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())
}

func TestNewProfiler_RequiresAddress(t *testing.T) {
	_, err := NewProfiler(ProfilerConfig{Enabled: true, ApplicationName: "assetledger"}, zap.NewNop())
	assert.Error(t, err)
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	assert.Contains(t, samplerFor(0.25).Description(), "TraceIDRatioBased")
}

func TestStartServiceSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	paymentID := uuid.New()
	ctx, span := StartServiceSpan(context.Background(), "rental_payment", "record",
		SpanAttrPaymentID, paymentID, SpanAttrAmount, int64(21000), 42, "ignored")
	assert.NotEmpty(t, GetTraceID(ctx))
	RecordError(span, errors.New("boom"))
	RecordError(span, nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "rental_payment.record", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String(SpanAttrPaymentID, paymentID.String()))
	assert.Contains(t, ended[0].Attributes(), attribute.Int64(SpanAttrAmount, 21000))
	assert.Len(t, ended[0].Attributes(), 2)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestLedgerMetrics_Handle(t *testing.T) {
	reader, provider := newManualMeter(t)
	m, err := NewLedgerMetrics(provider.Meter("test"))
	require.NoError(t, err)
	ctx := context.Background()

	events := []shared.DomainEvent{
		&leasing.RentalPaymentScheduledEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(leasing.EventTypeRentalPaymentScheduled, "RentalPayment", uuid.New()),
			Amount:          21000,
		},
		&leasing.RentalPaymentPaidEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(leasing.EventTypeRentalPaymentPaid, "RentalPayment", uuid.New()),
			Amount:          21000,
		},
		&leasing.RentalPaymentOverdueEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(leasing.EventTypeRentalPaymentOverdue, "RentalPayment", uuid.New()),
		},
		&fee.FeeRecordPaidEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(fee.EventTypeFeeRecordPaid, "FeeRecord", uuid.New()),
			Amount:          1200,
		},
		&invoice.InvoiceIssuedEvent{
			BaseDomainEvent: shared.NewBaseDomainEvent(invoice.EventTypeInvoiceIssued, "Invoice", uuid.New()),
			Type:            invoice.TypeInvoice3,
		},
	}
	for _, e := range events {
		require.NoError(t, m.Handle(ctx, e))
	}
	assert.Nil(t, m.EventTypes())

	assert.Equal(t, int64(5), sumOf(t, reader, "assetledger_domain_events_total"))
	assert.Equal(t, int64(21000), sumOf(t, reader, "assetledger_rent_scheduled_twd_total"))
	assert.Equal(t, int64(21000), sumOf(t, reader, "assetledger_rent_received_twd_total"))
	assert.Equal(t, int64(1), sumOf(t, reader, "assetledger_rent_overdue_total"))
	assert.Equal(t, int64(1200), sumOf(t, reader, "assetledger_fees_received_twd_total"))
	assert.Equal(t, int64(1), sumOf(t, reader, "assetledger_invoices_issued_total",
		AttrInvoiceType.String(string(invoice.TypeInvoice3))))
}

func TestLedgerMetrics_RecordSweep(t *testing.T) {
	reader, provider := newManualMeter(t)
	m, err := NewLedgerMetrics(provider.Meter("test"))
	require.NoError(t, err)

	m.RecordSweep(context.Background(), "overdue", 3, 40*time.Millisecond, nil)
	m.RecordSweep(context.Background(), "overdue", 0, time.Millisecond, errors.New("db down"))

	assert.Equal(t, int64(3), sumOf(t, reader, "assetledger_sweep_transitions_total", AttrSweepKind.String("overdue")))
}

func TestNewLedgerMetrics_NilMeter(t *testing.T) {
	_, err := NewLedgerMetrics(nil)
	assert.ErrorIs(t, err, ErrMeterNil)
}

type sampleRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestDBTracingPlugin_RecordsQueriesAndSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&sampleRow{}))

	reader, mp := newManualMeter(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	metrics, err := NewDBMetrics(mp.Meter("db"), sqlDB, time.Hour, zap.NewNop())
	require.NoError(t, err)

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	cfg.DBSystem = "sqlite"
	cfg.SlowQueryThresh = time.Nanosecond
	require.NoError(t, NewDBTracingPlugin(cfg, metrics, zap.NewNop()).Register(db))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&sampleRow{Name: "a"}).Error)
	var got sampleRow
	require.NoError(t, db.WithContext(ctx).First(&got).Error)

	assert.Equal(t, int64(1), sumOf(t, reader, "db_query_total", AttrDBOperation.String("create")))
	assert.Equal(t, int64(1), sumOf(t, reader, "db_query_total", AttrDBOperation.String("query")))
	assert.Equal(t, int64(2), sumOf(t, reader, "db_slow_query_total"))
	assert.NotEmpty(t, recorder.Ended())

	metrics.StartPoolStatsCollection(ctx)
	metrics.Stop()
	metrics.Stop()
}
