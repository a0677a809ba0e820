// Package report renders inventory snapshots taken during a simulation.
//
// # Snapshots
//
// A Snapshot is a deep copy of the inventory at the end of a day. Day 0 is
// the seed before any update:
//
//	snap := report.Take(0, items)
//
// # Formats
//
// Render a run of snapshots in one of the supported formats:
//
//	r := report.NewRenderer(report.FormatText)
//	out, err := r.Render(snapshots)
//
// Supported formats:
//   - text: the classic texttest layout ("-------- day N --------")
//   - table: bordered tables, one per day
//   - json: an array of {day, items} objects
package report
