package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/config"
	"github.com/babetech/borastock/internal/repository/mongodb"
	"github.com/babetech/borastock/internal/repository/sheets"
	"github.com/babetech/borastock/internal/scheduler"
	"github.com/babetech/borastock/internal/server/handlers"
	"github.com/babetech/borastock/internal/server/router"
	alertsvc "github.com/babetech/borastock/internal/service/alerts"
	reportingsvc "github.com/babetech/borastock/internal/service/reporting"
	"github.com/babetech/borastock/internal/service/stockview"
	"github.com/babetech/borastock/internal/store"
	"github.com/babetech/borastock/pkg/clients/webhook"
	"github.com/babetech/borastock/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("sheets report export enabled")
	} else {
		baseLogger.Info("sheets report export disabled")
	}

	dataStore := store.New(baseLogger.Named("store"))
	if cfg.Server.SeedSampleData {
		dataStore.Seed()
	}
	queries := stockview.NewQueryState()

	reportingSvc := reportingsvc.NewService(dataStore, mongoRepo, exporter, baseLogger.Named("svc.reporting"))

	var alertsSvc *alertsvc.Service
	if cfg.Alerts.WebhookURL != "" {
		alertClient := webhook.NewClient(cfg.Alerts.WebhookURL)
		alertsSvc = alertsvc.NewService(dataStore, alertClient, baseLogger.Named("svc.alerts"))
		baseLogger.Info("stock alert webhook enabled")
	} else {
		baseLogger.Warn("alert webhook url missing, stock alerts disabled")
	}

	engine := router.New(router.Handlers{
		Stock:     handlers.NewStockHandler(dataStore, queries, baseLogger.Named("handlers.stock")),
		Entries:   handlers.NewEntriesHandler(dataStore, queries, baseLogger.Named("handlers.entries")),
		Exits:     handlers.NewExitsHandler(dataStore, queries, baseLogger.Named("handlers.exits")),
		Suppliers: handlers.NewSuppliersHandler(dataStore, queries, baseLogger.Named("handlers.suppliers")),
		Settings:  handlers.NewSettingsHandler(mongoRepo, baseLogger.Named("handlers.settings")),
		Reports:   handlers.NewReportsHandler(reportingSvc, baseLogger.Named("handlers.reports")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, reportingSvc, alertsSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
