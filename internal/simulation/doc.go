// Package simulation drives the inventory through simulated days.
//
// # Simulator
//
// The Simulator owns one inventory and coordinates each day:
//
//  1. Advance every item with the engine (sequentially or in parallel)
//  2. Detect items that became worthless
//  3. Take a report snapshot
//  4. Report progress and log the day
//
// # Basic Usage
//
//	sim := simulation.New(settings, logger, func(event simulation.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	sim.Initialize(items)
//
//	snapshots, err := sim.Run(ctx, 30)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// settings.MaxConcurrentUpdates above 1 fans each day out over that many
// goroutines. Days themselves always run one after another, and every
// Simulator method is safe to call from multiple goroutines.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Day     int
//	}
package simulation
