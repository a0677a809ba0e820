package model

import (
	"slices"
	"strings"
)

// Category is the base category that governs an item's daily update.
//
// Base categories are mutually exclusive. Conjured is not a Category; it is
// carried separately in Class because it combines with any base.
type Category int

const (
	// CategoryNormal degrades by one point a day. It is the fallback
	// for any name that matches nothing else.
	CategoryNormal Category = iota

	// CategoryLegendary never ages and is pinned to LegendaryQuality.
	CategoryLegendary

	// CategoryAgedBrie improves by one point a day.
	CategoryAgedBrie

	// CategoryBackstage improves faster as the concert approaches and
	// becomes worthless once it has passed.
	CategoryBackstage
)

// String returns the lower-case name of the category.
//
// Returns:
//   - "normal" for CategoryNormal
//   - "legendary" for CategoryLegendary
//   - "aged-brie" for CategoryAgedBrie
//   - "backstage" for CategoryBackstage
func (c Category) String() string {
	switch c {
	case CategoryLegendary:
		return "legendary"
	case CategoryAgedBrie:
		return "aged-brie"
	case CategoryBackstage:
		return "backstage"
	default:
		return "normal"
	}
}

// Class is the result of classifying an item's name.
type Class struct {
	// Category is the base category.
	Category Category

	// Conjured reports whether the conjured modifier applies.
	Conjured bool
}

// Rules holds the names and tokens used to classify items.
//
// LegendaryNames and AgedBrieName are matched exactly. BackstageToken and
// ConjuredToken are matched as case-insensitive substrings.
type Rules struct {
	// LegendaryNames lists the exact names of Legendary items.
	LegendaryNames []string

	// AgedBrieName is the exact name of the cheese that improves with age.
	AgedBrieName string

	// BackstageToken marks backstage passes anywhere in the name.
	BackstageToken string

	// ConjuredToken marks conjured items anywhere in the name.
	ConjuredToken string
}

// DefaultRules returns the rules of the reference shop.
func DefaultRules() *Rules {
	return &Rules{
		LegendaryNames: []string{"Sulfuras, Hand of Ragnaros"},
		AgedBrieName:   "Aged Brie",
		BackstageToken: "backstage passes",
		ConjuredToken:  "conjured",
	}
}

// Classify determines the base category and conjured modifier for a name.
//
// Base categories are checked in order Legendary, AgedBrie, Backstage, and
// anything left over is Normal. Conjured is detected independently. A nil
// receiver classifies with DefaultRules.
//
// Example:
//
//	rules.Classify("Backstage passes to a TAFKAL80ETC concert")
//	// Class{Category: CategoryBackstage}
//	rules.Classify("Conjured Aged Brie")
//	// Class{Category: CategoryNormal, Conjured: true}, Aged Brie is an exact match
func (r *Rules) Classify(name string) Class {
	if r == nil {
		r = DefaultRules()
	}

	lower := strings.ToLower(name)
	class := Class{
		Category: CategoryNormal,
		Conjured: containsToken(lower, r.ConjuredToken),
	}

	switch {
	case slices.Contains(r.LegendaryNames, name):
		class.Category = CategoryLegendary
	case r.AgedBrieName != "" && name == r.AgedBrieName:
		class.Category = CategoryAgedBrie
	case containsToken(lower, r.BackstageToken):
		class.Category = CategoryBackstage
	}

	return class
}

// containsToken reports whether lowerName contains token, ignoring case.
// An empty token never matches.
func containsToken(lowerName, token string) bool {
	if token == "" {
		return false
	}
	return strings.Contains(lowerName, strings.ToLower(token))
}
