package model

import "fmt"

// Quality bounds shared by every category except Legendary.
const (
	// MinQuality is the floor for non-Legendary items.
	MinQuality = 0

	// MaxQuality is the ceiling for non-Legendary items.
	MaxQuality = 50

	// LegendaryQuality is the fixed quality of every Legendary item.
	LegendaryQuality = 80
)

// Item represents one entry in the merchant's inventory.
//
// Item is constructed once by whoever seeds the inventory. After that only
// SellIn and Quality change, once per simulated day, in place.
//
// Example:
//
//	item := NewItem("Elixir of the Mongoose", 5, 7)
//	// item.SellIn = 5, item.Quality = 7
type Item struct {
	// Name identifies the item and is the only input to classification.
	Name string `json:"name" yaml:"name"`

	// SellIn is the number of days left before the sell-by date.
	// Negative values mean the item is that many days past it.
	SellIn int `json:"sellIn" yaml:"sellIn"`

	// Quality is the item's value score.
	// It stays within [MinQuality, MaxQuality] for non-Legendary items
	// and equals LegendaryQuality for Legendary ones.
	Quality int `json:"quality" yaml:"quality"`
}

// NewItem creates a new Item.
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
	}
}

// Clone returns an independent copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// String formats the item as "name, sellIn, quality".
func (i *Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// CloneAll deep-copies a slice of items.
func CloneAll(items []*Item) []*Item {
	out := make([]*Item, len(items))
	for idx, item := range items {
		out[idx] = item.Clone()
	}
	return out
}
