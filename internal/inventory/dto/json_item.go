package dto

import (
	"fmt"

	"github.com/handiism/gilded-rose/internal/model"
	"github.com/tidwall/gjson"
)

// JSONItem represents one item from a JSON seed.
type JSONItem struct {
	Name    string
	SellIn  int
	Quality int
}

// FromResult reads a JSONItem from a gjson object.
//
// sellIn is looked up as "sellIn" and then "sell_in". Both integer fields
// must be JSON numbers without a fractional part.
func FromResult(r gjson.Result) (JSONItem, error) {
	if !r.IsObject() {
		return JSONItem{}, fmt.Errorf("item is not an object: %s", r.Raw)
	}

	name := r.Get("name")
	if name.Type != gjson.String {
		return JSONItem{}, fmt.Errorf("item name missing or not a string: %s", r.Raw)
	}

	sellIn := r.Get("sellIn")
	if !sellIn.Exists() {
		sellIn = r.Get("sell_in")
	}
	sellInValue, err := intField("sellIn", sellIn)
	if err != nil {
		return JSONItem{}, err
	}

	qualityValue, err := intField("quality", r.Get("quality"))
	if err != nil {
		return JSONItem{}, err
	}

	return JSONItem{
		Name:    name.String(),
		SellIn:  sellInValue,
		Quality: qualityValue,
	}, nil
}

// ToItem converts JSONItem to a model.Item.
func (ji JSONItem) ToItem() *model.Item {
	return model.NewItem(ji.Name, ji.SellIn, ji.Quality)
}

func intField(field string, v gjson.Result) (int, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%s missing or not a number", field)
	}
	n := v.Int()
	if float64(n) != v.Float() {
		return 0, fmt.Errorf("%s must be an integer, got %s", field, v.Raw)
	}
	return int(n), nil
}
