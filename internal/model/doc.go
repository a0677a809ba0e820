// Package model defines the core data structures used throughout
// the gilded-rose application.
//
// # Item
//
// Item is the only entity. It carries an opaque name and the two attributes
// the nightly update touches:
//
//	item := model.NewItem("Aged Brie", 2, 0)
//	fmt.Println(item) // Aged Brie, 2, 0
//
// # Categories
//
// An item's category is never stored. It is derived from the name on every
// update by Rules.Classify:
//
//	rules := model.DefaultRules()
//	class := rules.Classify("Conjured Mana Cake")
//	fmt.Println(class.Category, class.Conjured) // normal true
//
// Base categories are mutually exclusive: Legendary, AgedBrie, Backstage and
// Normal. Conjured is an independent modifier that combines with any base.
//
// # Rules
//
// Rules holds the names and tokens the classifier matches against:
//
//	rules := &model.Rules{
//	    LegendaryNames: []string{"Sulfuras, Hand of Ragnaros"},
//	    AgedBrieName:   "Aged Brie",
//	    BackstageToken: "backstage passes",
//	    ConjuredToken:  "conjured",
//	}
package model
