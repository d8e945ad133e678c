package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "relay-ads/internal/adapter/http"
	"relay-ads/internal/adapter/postgres"
	"relay-ads/internal/adapter/usecase"
	"relay-ads/internal/aggregate"
	"relay-ads/internal/botdetect"
	"relay-ads/internal/config"
	"relay-ads/internal/db"
	"relay-ads/internal/recorder"
)

// main is the entry point of the relay-ads service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and the delivery engine, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server and
// drains the event recorder.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	if loc, err := time.LoadLocation(cfg.Delivery.BucketTimezone); err != nil {
		logger.Error("invalid bucket timezone", slog.Any("error", err))
		os.Exit(1)
	} else {
		aggregate.CampaignCreativeDaily.Location = loc
		aggregate.PlacementDaily.Location = loc
	}

	deliveryRepo := postgres.NewDeliveryRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)

	engine := aggregate.NewEngine(counterRepo, logger)
	rec := recorder.New(eventRepo, engine, logger, cfg.Recorder)
	svc := usecase.NewDeliveryUseCase(deliveryRepo, rec, botdetect.New(), cfg.Delivery.RandSeed, logger)

	handler := httpadapter.NewHandler(svc, eventRepo, engine, counterRepo, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}

	drainCtx, drainCancel := context.WithTimeout(context.Background(), cfg.Recorder.DrainTimeout)
	defer drainCancel()
	if err = rec.Close(drainCtx); err != nil {
		logger.Error("recorder drain incomplete", slog.Any("error", err))
	}
}
