package engine

import (
	"context"
	"math"

	"github.com/handiism/gilded-rose/internal/model"
	"golang.org/x/sync/errgroup"
)

// Multipliers and backstage thresholds of the daily rule.
const (
	conjuredMultiplier = 2
	expiredMultiplier  = 2

	backstageFiveDays = 5
	backstageTenDays  = 10

	backstageFiveDaysDelta = 3
	backstageTenDaysDelta  = 2
	standardDelta          = 1
)

// Updater applies the daily rule using a fixed set of classification rules.
//
// Updater holds no per-item state and is safe for concurrent use as long as
// each item is touched by one goroutine at a time.
//
// Example:
//
//	u := NewUpdater(model.DefaultRules())
//	item := model.NewItem("Aged Brie", 2, 0)
//	u.UpdateItem(item)
//	// item.SellIn = 1, item.Quality = 1
type Updater struct {
	rules *model.Rules
}

// NewUpdater creates a new Updater. A nil rules value uses model.DefaultRules.
func NewUpdater(rules *model.Rules) *Updater {
	if rules == nil {
		rules = model.DefaultRules()
	}
	return &Updater{rules: rules}
}

// Rules returns the classification rules the updater was built with.
func (u *Updater) Rules() *model.Rules {
	return u.rules
}

// UpdateItem applies one day of aging to item in place.
func (u *Updater) UpdateItem(item *model.Item) {
	class := u.rules.Classify(item.Name)
	item.SellIn, item.Quality = Next(class, item.SellIn, item.Quality)
}

// AdvanceOneDay applies one day of aging to every item in place.
func (u *Updater) AdvanceOneDay(items []*model.Item) {
	for _, item := range items {
		u.UpdateItem(item)
	}
}

// AdvanceOneDayParallel applies one day of aging to every item using at most
// limit goroutines. A limit below 1 means no limit.
//
// The context is only checked before each item is scheduled. If it is
// cancelled part way through, the items already updated stay updated and the
// context error is returned.
func (u *Updater) AdvanceOneDayParallel(ctx context.Context, items []*model.Item, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			u.UpdateItem(item)
			return nil
		})
	}

	return g.Wait()
}

// Next computes the new (sellIn, quality) pair for an item of the given class.
//
// Thresholds are evaluated against the sellIn value after this day's
// decrement. See the package documentation for the step order.
func Next(class model.Class, sellIn, quality int) (int, int) {
	if class.Category == model.CategoryLegendary {
		return sellIn, model.LegendaryQuality
	}

	// sellIn saturates instead of wrapping around to a positive value.
	if sellIn > math.MinInt {
		sellIn--
	}
	expired := sellIn < 0

	var delta int
	switch class.Category {
	case model.CategoryAgedBrie:
		delta = standardDelta
	case model.CategoryBackstage:
		if expired {
			return sellIn, model.MinQuality
		}
		delta = backstageDelta(sellIn)
	default:
		delta = -standardDelta
	}

	if class.Conjured {
		delta *= conjuredMultiplier
	}
	if expired && class.Category != model.CategoryBackstage {
		delta *= expiredMultiplier
	}

	return sellIn, applyDelta(quality, delta)
}

// backstageDelta returns the daily improvement for a pass whose concert is
// daysLeft days away. daysLeft is never negative here.
func backstageDelta(daysLeft int) int {
	switch {
	case daysLeft <= backstageFiveDays:
		return backstageFiveDaysDelta
	case daysLeft <= backstageTenDays:
		return backstageTenDaysDelta
	default:
		return standardDelta
	}
}

// AdvanceOneDay applies one day of aging to every item using DefaultRules.
func AdvanceOneDay(items []*model.Item) {
	NewUpdater(nil).AdvanceOneDay(items)
}
