// Package engine implements the end-of-day update applied to every item in
// the inventory.
//
// # Daily Update
//
// Each item is updated independently in a fixed order:
//
//  1. Advance time: sellIn drops by one, except for Legendary items
//  2. Pick a base quality delta from the category and the new sellIn
//  3. Double the delta for conjured items
//  4. Double it again for expired Normal or AgedBrie items
//  5. Apply the delta and clamp quality to [0, 50]
//
// Legendary items are forced to quality 80 and Backstage passes are forced
// to 0 once the concert has passed. Both skip the multiplier steps.
//
// # Basic Usage
//
//	u := engine.NewUpdater(model.DefaultRules())
//	u.AdvanceOneDay(items)
//
// # Concurrency
//
// Items have no cross-item dependency, so a day can be fanned out:
//
//	err := u.AdvanceOneDayParallel(ctx, items, 8)
//
// Callers must not advance the same slice from two goroutines at once.
package engine
