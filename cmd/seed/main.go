package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"os"
	"time"

	"github.com/ArowuTest/blood-donation-backend/internal/bootstrap"
	"github.com/ArowuTest/blood-donation-backend/internal/config"
	"github.com/ArowuTest/blood-donation-backend/internal/logger"
	"github.com/ArowuTest/blood-donation-backend/internal/services"
	"go.uber.org/zap"
)

//go:embed sample.json
var sampleData []byte

func main() {
	file := flag.String("file", "", "seed JSON file (defaults to the bundled sample data)")
	configPath := flag.String("config", ".", "directory holding .env and config.yaml")
	timeout := flag.Duration("timeout", time.Minute, "overall seed timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zlog, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	data := sampleData
	if *file != "" {
		if data, err = os.ReadFile(*file); err != nil {
			zlog.Fatal("failed to read seed file", zap.String("file", *file), zap.Error(err))
		}
	}
	f, err := parseSeed(data)
	if err != nil {
		zlog.Fatal("invalid seed file", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open store", zap.Error(err))
	}
	defer func() { _ = store.Close(context.Background()) }()

	s, err := seed(ctx, f,
		services.NewCampService(store.Camps, nil),
		services.NewDonorService(store.Donors, nil),
		services.NewTrustService(store.Trusts, nil),
		zlog)
	if err != nil {
		zlog.Error("seed failed", zap.Error(err), zap.Any("created", s.Created))
		return
	}
	zlog.Info("seed complete", zap.Any("created", s.Created), zap.Any("skipped", s.Skipped))
}
