package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/campo-erp/campo-erp/internal/app"
	"github.com/campo-erp/campo-erp/internal/auth"
	"github.com/campo-erp/campo-erp/internal/customers"
	"github.com/campo-erp/campo-erp/internal/geo"
	"github.com/campo-erp/campo-erp/internal/inventory"
	"github.com/campo-erp/campo-erp/internal/observability"
	"github.com/campo-erp/campo-erp/internal/orders"
	"github.com/campo-erp/campo-erp/internal/platform/cache"
	"github.com/campo-erp/campo-erp/internal/shipments"
	"github.com/campo-erp/campo-erp/internal/store"
	"github.com/campo-erp/campo-erp/internal/viewmodel"
	"github.com/campo-erp/campo-erp/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	geocoder := geo.NewClient(cfg.GeocoderURL, cfg.GeocoderCountry)
	estimator := shipments.Estimator{
		Origin:   shipments.Coordinate{Lat: cfg.OriginLat, Lng: cfg.OriginLng},
		BaseCost: cfg.ShippingBaseCost,
		PerKm:    cfg.ShippingCostPerKm,
	}

	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	customersService := customers.NewService(st)
	inventoryService := inventory.NewService(st)
	ordersService := orders.NewService(st, cfg.DefaultTaxPercent)
	shipmentsService := shipments.NewService(st, estimator, jobClient, logger)

	authHandler := auth.NewHandler(st)
	customersHandler := customers.NewHandler(logger, customersService)
	inventoryHandler := inventory.NewHandler(logger, inventoryService)
	ordersHandler := orders.NewHandler(logger, ordersService)
	shipmentsHandler := shipments.NewHandler(logger, shipmentsService, geocoder)
	viewsHandler := viewmodel.NewHandler(logger, viewmodel.NewBuilder(st, cfg.DefaultTaxPercent))

	metrics := observability.NewMetrics()

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Store:            st,
		AuthHandler:      authHandler,
		CustomersHandler: customersHandler,
		InventoryHandler: inventoryHandler,
		OrdersHandler:    ordersHandler,
		ShipmentsHandler: shipmentsHandler,
		ViewsHandler:     viewsHandler,
		JobHandler:       jobHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
