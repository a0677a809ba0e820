package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handiism/gilded-rose/internal/config"
	"github.com/handiism/gilded-rose/internal/http"
	"github.com/handiism/gilded-rose/internal/inventory"
	ioutils "github.com/handiism/gilded-rose/internal/io"
	"github.com/handiism/gilded-rose/internal/logging"
	"github.com/handiism/gilded-rose/internal/report"
	"github.com/handiism/gilded-rose/internal/simulation"
	"go.uber.org/zap"
)

func main() {
	// Command line flags
	var (
		daysFlag      = flag.Int("days", -1, "Number of days to simulate (overrides config)")
		configFlag    = flag.String("config", "", "Path to config file (.json, .yaml)")
		envFlag       = flag.String("env", ".env", "Path to .env file with GILDEDROSE_* overrides")
		inventoryFlag = flag.String("inventory", "", "Seed inventory file or URL (default: built-in shop)")
		formatFlag    = flag.String("format", "", "Report format: text, table, json")
		outFlag       = flag.String("out", "", "Write report to file instead of stdout")
		parallelFlag  = flag.Int("parallel", 0, "Max concurrent item updates per day")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Positional day count, as the texttest fixture passes it
	if flag.NArg() > 0 && *daysFlag < 0 {
		var n int
		if _, err := fmt.Sscanf(flag.Arg(0), "%d", &n); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid day count %q\n", flag.Arg(0))
			flag.Usage()
			os.Exit(1)
		}
		*daysFlag = n
	}

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := settings.ApplyEnv(*envFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *daysFlag >= 0 {
		settings.Days = *daysFlag
	}
	if *inventoryFlag != "" {
		settings.InventoryPath = *inventoryFlag
	}
	if *formatFlag != "" {
		settings.ReportFormat = *formatFlag
	}
	if *outFlag != "" {
		settings.ReportPath = *outFlag
	}
	if *parallelFlag > 0 {
		settings.MaxConcurrentUpdates = *parallelFlag
	}

	if settings.MaxDays > 0 && settings.Days > settings.MaxDays {
		fmt.Fprintf(os.Stderr, "Error: %d days exceeds the limit of %d (max_days)\n", settings.Days, settings.MaxDays)
		os.Exit(1)
	}

	format, err := report.ParseFormat(settings.ReportFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(settings.LogLevel, settings.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Handle interrupts
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := http.NewClient(time.Duration(settings.HTTPTimeoutSeconds) * time.Second)
	loader := inventory.NewLoader(client, settings.ToRules()).WithRetry(settings.RetryPolicy())

	items, err := loader.Load(ctx, settings.InventoryPath)
	if err != nil {
		logger.Error("Failed to load inventory", zap.String("source", settings.InventoryPath), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		os.Exit(1)
	}

	// Create simulator with progress callback
	sim := simulation.New(settings, logger, func(event simulation.ProgressEvent) {
		if event.Level == simulation.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case simulation.LevelError:
			prefix = "✗ "
		case simulation.LevelWarning:
			prefix = "! "
		case simulation.LevelSuccess:
			prefix = "✓ "
		case simulation.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Fprintln(os.Stderr, prefix+event.Message)
	})
	sim.Initialize(items)

	snapshots, err := sim.Run(ctx, settings.Days)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error during simulation: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "\nSimulation cancelled, reporting completed days.")
	}

	out, err := report.NewRenderer(format).Render(snapshots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		os.Exit(1)
	}

	// Write with a fresh context so a cancelled run still flushes its report
	if err := ioutils.WriteFile(context.WithoutCancel(ctx), settings.ReportPath, []byte(out)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	if ctx.Err() != nil {
		os.Exit(130)
	}
}
