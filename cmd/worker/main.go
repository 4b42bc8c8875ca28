package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/campo-erp/campo-erp/internal/app"
	"github.com/campo-erp/campo-erp/internal/geo"
	jobmetrics "github.com/campo-erp/campo-erp/internal/jobs"
	"github.com/campo-erp/campo-erp/internal/platform/cache"
	"github.com/campo-erp/campo-erp/internal/shipments"
	"github.com/campo-erp/campo-erp/internal/store"
	"github.com/campo-erp/campo-erp/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	st := store.New(redisClient, cfg.StateKey, cfg.AuthKey, logger)

	estimator := shipments.Estimator{
		Origin:   shipments.Coordinate{Lat: cfg.OriginLat, Lng: cfg.OriginLng},
		BaseCost: cfg.ShippingBaseCost,
		PerKm:    cfg.ShippingCostPerKm,
	}
	shipmentsService := shipments.NewService(st, estimator, nil, logger)
	geocoder := geo.NewClient(cfg.GeocoderURL, cfg.GeocoderCountry)

	jobMetrics := jobmetrics.NewMetrics(nil)
	geocodeJob := jobs.NewGeocodeJob(shipmentsService, geocoder, logger, jobMetrics)

	backfillTask, err := jobs.NewGeocodeBackfillTask()
	if err != nil {
		logger.Error("build backfill task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeShipmentGeocode, Handler: geocodeJob.Handle},
			{Type: jobs.TaskTypeGeocodeBackfill, Handler: geocodeJob.HandleBackfill},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 * * * *", Task: backfillTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
