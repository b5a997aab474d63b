package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/candidatehub/interview-availability/internal/config"
	"github.com/candidatehub/interview-availability/internal/handler"
	"github.com/candidatehub/interview-availability/internal/health"
	"github.com/candidatehub/interview-availability/internal/infra/availabilityrecorder"
	"github.com/candidatehub/interview-availability/internal/infra/freebusy"
	"github.com/candidatehub/interview-availability/internal/infra/repository"
	"github.com/candidatehub/interview-availability/internal/infra/templatestore"
	"github.com/candidatehub/interview-availability/internal/observability"
	"github.com/candidatehub/interview-availability/internal/observability/logging"
	"github.com/candidatehub/interview-availability/internal/observability/metrics"
	"github.com/candidatehub/interview-availability/internal/observability/middleware"
	"github.com/candidatehub/interview-availability/internal/service/availability"
	"github.com/candidatehub/interview-availability/internal/service/slot"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	env := logging.EnvDev
	if os.Getenv("SERVICE_ENV") == "prod" {
		env = logging.EnvProd
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    cfg.ServiceName,
			Version: Version,
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		SamplingRate: 1.0,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	availabilityMetrics, err := metrics.NewAvailabilityMetrics()
	if err != nil {
		slog.Error("failed to initialize availability metrics", slog.String("error", err.Error()))
		return 1
	}

	recorderCfg := availabilityrecorder.LoadConfig()
	recorder, err := availabilityrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize availability recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close availability recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect database",
			slog.String("event", "database.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close database", slog.String("error", err.Error()))
			}
		}
	}()

	templateStore := templatestore.NewStore(db)
	if err := templateStore.Migrate(ctx); err != nil {
		slog.Error("failed to migrate database schema", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("database connected")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	freeBusyClient := freebusy.NewClient(cfg.FreeBusyURL)
	busyCache := repository.NewBusyCache(redisClient, cfg.Redis.BusyCacheTTL)
	slotGenerator := slot.NewGenerator(cfg.Scheduling)

	availabilityService := availability.NewService(
		templateStore,
		freeBusyClient,
		busyCache,
		slotGenerator,
		availabilityMetrics,
		recorder,
	)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)

	if env == logging.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("interview-availability"),
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, db, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/interviews/:id/availability", availabilityHandler.HandleAvailability)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("horizon_days", cfg.Scheduling.HorizonDays),
			slog.Int("business_start_hour", cfg.Scheduling.BusinessStartHour),
			slog.Int("business_end_hour", cfg.Scheduling.BusinessEndHour),
			slog.Duration("lead_time", cfg.Scheduling.LeadTime),
			slog.Duration("slot_step", cfg.Scheduling.SlotStep),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := recorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush availability recorder", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
