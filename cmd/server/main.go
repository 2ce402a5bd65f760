package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/assetledger/backend/docs"
	feeapp "github.com/assetledger/backend/internal/application/fee"
	invoiceapp "github.com/assetledger/backend/internal/application/invoice"
	leasingapp "github.com/assetledger/backend/internal/application/leasing"
	membershipapp "github.com/assetledger/backend/internal/application/membership"
	profitshareapp "github.com/assetledger/backend/internal/application/profitshare"
	"github.com/assetledger/backend/internal/infrastructure/cache"
	"github.com/assetledger/backend/internal/infrastructure/config"
	"github.com/assetledger/backend/internal/infrastructure/event"
	"github.com/assetledger/backend/internal/infrastructure/logger"
	"github.com/assetledger/backend/internal/infrastructure/persistence"
	"github.com/assetledger/backend/internal/infrastructure/scheduler"
	"github.com/assetledger/backend/internal/infrastructure/telemetry"
	"github.com/assetledger/backend/internal/interfaces/http/handler"
	"github.com/assetledger/backend/internal/interfaces/http/middleware"
	"github.com/assetledger/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//	@title			Asset Ledger API
//	@version		1.0
//	@description	Membership fees, leases, rental payments, profit sharing and invoices.

//	@host		localhost:8080
//	@BasePath	/api/v1

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	}
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	// Telemetry providers come first so the final logger can tee into the
	// OTLP log pipeline.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogExportEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}

	log := bootLog
	if loggerProvider.IsEnabled() {
		level, _ := logger.ParseLevel(cfg.Log.Level)
		log, err = logger.New(logCfg, loggerProvider.ZapCore(level))
		if err != nil {
			bootLog.Fatal("Failed to initialize logger", zap.Error(err))
		}
	}
	defer func() { _ = log.Sync() }()

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingEndpoint,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	log.Info("Starting asset ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected")

	meter := meterProvider.Meter("assetledger")
	var dbMetrics *telemetry.DBMetrics
	if meterProvider.IsEnabled() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatal("Failed to get sql.DB", zap.Error(err))
		}
		dbMetrics, err = telemetry.NewDBMetrics(meter, sqlDB, 0, log)
		if err != nil {
			log.Fatal("Failed to create database metrics", zap.Error(err))
		}
		dbMetrics.StartPoolStatsCollection(ctx)
	}
	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.LogFullSQL = cfg.Telemetry.DBLogFullSQL
	dbTracing.SlowQueryThresh = cfg.Telemetry.DBSlowQueryThresh
	if err := telemetry.NewDBTracingPlugin(dbTracing, dbMetrics, log).Register(db.DB); err != nil {
		log.Fatal("Failed to register database instrumentation", zap.Error(err))
	}

	ledgerMetrics, err := telemetry.NewLedgerMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create ledger metrics", zap.Error(err))
	}

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(event.NewAuditLogHandler(log))
	bus.Subscribe(ledgerMetrics)
	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	scope := persistence.NewGormTransactionScope(db.DB, cfg.Identifier.MaxRetries)

	identifierService := membershipapp.NewIdentifierService(scope, log)
	memberService := membershipapp.NewMemberService(scope, identifierService, bus, log)
	companyService := membershipapp.NewCompanyService(scope, identifierService, bus, log)
	feeService := feeapp.NewLedgerService(scope, bus, log)
	investmentService := leasingapp.NewInvestmentService(scope, bus, log)
	leaseService := leasingapp.NewLeaseService(scope, bus, log)
	paymentTracker := leasingapp.NewPaymentTracker(scope, bus, log)
	paymentTracker.SetBatchSize(cfg.Scheduler.SweepBatchSize)
	profitService := profitshareapp.NewService(scope, bus, log)
	invoiceService := invoiceapp.NewService(scope, bus, log)

	locker := cache.NewLocker(ctx, cfg.Redis, log)
	sweepService := leasingapp.NewSweepService(leaseService, paymentTracker, locker, ledgerMetrics, cfg.Scheduler.LockTTL, log)

	sweepScheduler := scheduler.NewSweepScheduler(sweepService, log.Named("scheduler"), scheduler.SweepSchedulerConfig{
		Enabled:      cfg.Scheduler.Enabled,
		Interval:     cfg.Scheduler.SweepInterval,
		InitialDelay: cfg.Scheduler.InitialDelay,
		Timeout:      cfg.Scheduler.SweepTimeout,
	})
	if err := sweepScheduler.Start(ctx); err != nil {
		log.Fatal("Failed to start sweep scheduler", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	tracingCfg := middleware.DefaultTracingConfig()
	if cfg.Telemetry.ServiceName != "" {
		tracingCfg.ServiceName = cfg.Telemetry.ServiceName
	}
	tracingCfg.Enabled = tracerProvider.IsEnabled()
	profilingCfg := middleware.DefaultProfilingConfig()
	profilingCfg.Enabled = profiler.IsEnabled()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	securityCfg := middleware.DefaultSecurityConfig()
	securityCfg.HSTSEnabled = cfg.IsProduction()

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(tracingCfg),
		middleware.TracingAttributeInjector(),
		middleware.SpanErrorMarker(),
		middleware.HTTPMetrics(middleware.HTTPMetricsConfig{MeterProvider: meterProvider, Enabled: meterProvider.IsEnabled()}),
		middleware.ProfilingWithConfig(profilingCfg),
		middleware.SecureWithConfig(securityCfg),
		middleware.CORSWithConfig(corsCfg),
	)

	var apiMiddleware []gin.HandlerFunc
	apiMiddleware = append(apiMiddleware, middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimit, cfg.HTTP.RateLimitWindow)
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(limiter))
	}

	var cachePinger handler.Pinger
	if p, ok := locker.(handler.Pinger); ok {
		cachePinger = p
	}
	systemHandler := handler.NewSystemHandler(cfg.App.Name, telemetry.ServiceVersion, db, cachePinger)
	engine.GET("/health", systemHandler.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.HTTP.SwaggerEnabled,
			AllowedIPs: cfg.HTTP.SwaggerAllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"), router.WithMiddleware(apiMiddleware...))
	groups := r.RegisterLedger(router.Handlers{
		System:      systemHandler,
		Membership:  handler.NewMembershipHandler(identifierService, memberService, companyService),
		Fees:        handler.NewFeeHandler(feeService),
		Investments: handler.NewInvestmentHandler(investmentService, leaseService),
		Payments:    handler.NewPaymentHandler(paymentTracker),
		Profits:     handler.NewProfitHandler(profitService),
		Invoices:    handler.NewInvoiceHandler(invoiceService),
		Sweeps:      handler.NewSweepHandler(sweepService),
	})
	r.Setup()
	if log.Core().Enabled(zapcore.DebugLevel) {
		for _, g := range groups {
			for _, route := range g.Routes(r.BasePath()) {
				log.Debug("Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
			}
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := sweepScheduler.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping sweep scheduler", zap.Error(err))
	}
	if limiter != nil {
		limiter.Stop()
	}
	if err := bus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if closer, ok := locker.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}
	if dbMetrics != nil {
		dbMetrics.Stop()
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited")
}
