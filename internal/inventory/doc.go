// Package inventory builds the initial inventory the simulation ages.
//
// The package handles three sources:
//
//  1. The built-in reference fixture (Default)
//  2. Local JSON seed files
//  3. Remote JSON seed files fetched over HTTP(S)
//
// # Seed Format
//
// A seed is either a bare array of items or an object with an "items" array.
// sellIn may also be spelled sell_in:
//
//	{"items": [
//	    {"name": "Aged Brie", "sellIn": 2, "quality": 0},
//	    {"name": "Conjured Mana Cake", "sell_in": 3, "quality": 6}
//	]}
//
// # Loading
//
//	loader := inventory.NewLoader(client, rules)
//	items, err := loader.Load(ctx, "seeds/shop.json")
//	if errors.Is(err, inventory.ErrInvalidItem) {
//	    // a seed item broke the quality bounds
//	}
package inventory
