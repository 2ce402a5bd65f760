package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds database instrumentation settings
type DBTracingConfig struct {
	Enabled         bool          // Register otelgorm spans
	LogFullSQL      bool          // Keep query variables in spans (dev only)
	SlowQueryThresh time.Duration // Queries slower than this are flagged
	DBSystem        string
}

// DefaultDBTracingConfig returns the production-safe defaults
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "postgresql",
	}
}

// DBTracingPlugin registers otelgorm and a timing callback pair that flags
// slow queries on the span and feeds DBMetrics when one is attached
type DBTracingPlugin struct {
	config  DBTracingConfig
	metrics *DBMetrics
	logger  *zap.Logger
}

// NewDBTracingPlugin creates a plugin. metrics may be nil.
func NewDBTracingPlugin(cfg DBTracingConfig, metrics *DBMetrics, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh == 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	return &DBTracingPlugin{config: cfg, metrics: metrics, logger: logger}
}

// Register installs the instrumentation on db
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if p.config.Enabled {
		opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
		if !p.config.LogFullSQL {
			opts = append(opts, otelgorm.WithoutQueryVariables())
		}
		if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
			return err
		}
	}
	if !p.config.Enabled && p.metrics == nil {
		return nil
	}

	cb := db.Callback()
	hooks := []struct {
		op       string
		register func(before, after func(*gorm.DB)) error
	}{
		{"create", func(b, a func(*gorm.DB)) error {
			if err := cb.Create().Before("gorm:create").Register("timing:before_create", b); err != nil {
				return err
			}
			return cb.Create().After("gorm:create").Register("timing:after_create", a)
		}},
		{"query", func(b, a func(*gorm.DB)) error {
			if err := cb.Query().Before("gorm:query").Register("timing:before_query", b); err != nil {
				return err
			}
			return cb.Query().After("gorm:query").Register("timing:after_query", a)
		}},
		{"update", func(b, a func(*gorm.DB)) error {
			if err := cb.Update().Before("gorm:update").Register("timing:before_update", b); err != nil {
				return err
			}
			return cb.Update().After("gorm:update").Register("timing:after_update", a)
		}},
		{"delete", func(b, a func(*gorm.DB)) error {
			if err := cb.Delete().Before("gorm:delete").Register("timing:before_delete", b); err != nil {
				return err
			}
			return cb.Delete().After("gorm:delete").Register("timing:after_delete", a)
		}},
		{"raw", func(b, a func(*gorm.DB)) error {
			if err := cb.Raw().Before("gorm:raw").Register("timing:before_raw", b); err != nil {
				return err
			}
			return cb.Raw().After("gorm:raw").Register("timing:after_raw", a)
		}},
	}
	for _, h := range hooks {
		op := h.op
		if err := h.register(beforeQuery, func(db *gorm.DB) { p.afterQuery(db, op) }); err != nil {
			return err
		}
	}

	p.logger.Info("Database instrumentation registered",
		zap.Bool("tracing", p.config.Enabled),
		zap.Bool("metrics", p.metrics != nil),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
	)
	return nil
}

type contextKey string

const queryStartTimeKey contextKey = "db_query_start_time"

func beforeQuery(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
	}
}

func (p *DBTracingPlugin) afterQuery(db *gorm.DB, operation string) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	start, ok := ctx.Value(queryStartTimeKey).(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)
	slow := elapsed > p.config.SlowQueryThresh

	if p.metrics != nil {
		p.metrics.RecordQuery(ctx, operation, db.Statement.Table, elapsed, slow)
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		RecordError(span, db.Error)
	}
	if slow {
		span.SetAttributes(attribute.Bool("db.slow_query", true))
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
			attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
		))
	}
}
