// Package ioutils provides file system helpers for writing reports.
//
// # File Operations
//
//	// Write a report, creating parent directories as needed
//	err := ioutils.WriteFile(ctx, "/reports/2024/run.txt", []byte(out))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/reports/2024")
//
// "-" is accepted as a path meaning standard output.
package ioutils
