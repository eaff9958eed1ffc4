package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArowuTest/blood-donation-backend/api/routes"
	"github.com/ArowuTest/blood-donation-backend/internal/bootstrap"
	"github.com/ArowuTest/blood-donation-backend/internal/config"
	"github.com/ArowuTest/blood-donation-backend/internal/handlers"
	"github.com/ArowuTest/blood-donation-backend/internal/logger"
	"github.com/ArowuTest/blood-donation-backend/internal/metrics"
	"github.com/ArowuTest/blood-donation-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the configured store
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open store", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			zlog.Error("error closing store", zap.Error(err))
		}
	}()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize Services
	campService := services.NewCampService(store.Camps, m)
	donorService := services.NewDonorService(store.Donors, m)
	trustService := services.NewTrustService(store.Trusts, m)

	// Create Handler Dependencies struct
	handlerDeps := routes.HandlerDependencies{
		CampHandler:  handlers.NewCampHandler(campService, cfg.API.MaxPageSize, zlog),
		DonorHandler: handlers.NewDonorHandler(donorService, cfg.API.MaxPageSize, zlog),
		TrustHandler: handlers.NewTrustHandler(trustService, cfg.API.MaxPageSize, zlog),
		Logger:       zlog,
		Metrics:      m,
		Gatherer:     reg,
		Ping:         store.Ping,
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Run server in a goroutine so that it doesn't block
	go func() {
		zlog.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("store", cfg.Store.Driver),
			zap.Bool("write_guard", cfg.WriteGuardEnabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("listen failed", zap.Error(err))
			stop()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exiting")
}
