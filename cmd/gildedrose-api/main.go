package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handiism/gilded-rose/internal/config"
	"github.com/handiism/gilded-rose/internal/http"
	"github.com/handiism/gilded-rose/internal/httpapi"
	"github.com/handiism/gilded-rose/internal/inventory"
	"github.com/handiism/gilded-rose/internal/logging"
	"github.com/handiism/gilded-rose/internal/simulation"
	"go.uber.org/zap"
)

func main() {
	var (
		configFlag    = flag.String("config", "", "Path to config file (.json, .yaml)")
		addrFlag      = flag.String("addr", "", "Listen address (overrides config)")
		inventoryFlag = flag.String("inventory", "", "Seed inventory file or URL (default: built-in shop)")
	)
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := settings.ApplyEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		settings.ListenAddress = *addrFlag
	}
	if *inventoryFlag != "" {
		settings.InventoryPath = *inventoryFlag
	}

	logger, err := logging.New(settings.LogLevel, settings.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if !settings.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := http.NewClient(time.Duration(settings.HTTPTimeoutSeconds) * time.Second)
	items, err := inventory.NewLoader(client, settings.ToRules()).
		WithRetry(settings.RetryPolicy()).
		Load(ctx, settings.InventoryPath)
	if err != nil {
		logger.Fatal("Failed to load inventory", zap.String("source", settings.InventoryPath), zap.Error(err))
	}

	sim := simulation.New(settings, logger, nil)
	sim.Initialize(items)

	srv := &nethttp.Server{
		Addr:              settings.ListenAddress,
		Handler:           httpapi.New(sim, logger, settings.MaxDaysPerRequest).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Listening", zap.String("addr", settings.ListenAddress), zap.String("run_id", sim.RunID()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		logger.Fatal("Server failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
