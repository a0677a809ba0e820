// Package config provides configuration management for gilded-rose.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Environment overrides, optionally from a .env file
//   - Conversion to model.Rules for the classifier
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Simulates 2 days of the built-in shop
//	// Prints the texttest report to stdout
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/gildedrose.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	err := settings.ApplyEnv(".env")
//	// GILDEDROSE_DAYS=30 overrides settings.Days
//
// # Saving Settings
//
//	settings.Days = 30
//	err := settings.Save("/path/to/gildedrose.json")
package config
