package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handiism/gilded-rose/internal/config"
	"github.com/handiism/gilded-rose/internal/http"
	"github.com/handiism/gilded-rose/internal/inventory"
	"github.com/handiism/gilded-rose/internal/tui"
)

func main() {
	var (
		configFlag    = flag.String("config", "", "Path to config file (.json, .yaml)")
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
	if *inventoryFlag != "" {
		settings.InventoryPath = *inventoryFlag
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := http.NewClient(time.Duration(settings.HTTPTimeoutSeconds) * time.Second)
	items, err := inventory.NewLoader(client, settings.ToRules()).
		WithRetry(settings.RetryPolicy()).
		Load(ctx, settings.InventoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(ctx, settings, items); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
