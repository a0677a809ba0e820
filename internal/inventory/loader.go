package inventory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/handiism/gilded-rose/internal/http"
	"github.com/handiism/gilded-rose/internal/inventory/dto"
	"github.com/handiism/gilded-rose/internal/model"
	"github.com/tidwall/gjson"
)

var (
	// ErrEmptyInventory is returned when a seed contains no items.
	ErrEmptyInventory = errors.New("inventory is empty")

	// ErrInvalidItem is returned when a seed item breaks the item invariants.
	ErrInvalidItem = errors.New("invalid inventory item")
)

// Fetcher retrieves a remote seed.
type Fetcher interface {
	GetWithRetry(ctx context.Context, url string, policy http.RetryPolicy) ([]byte, error)
}

// Loader reads and validates seed inventories.
//
// Example usage:
//
//	loader := NewLoader(http.NewClient(0), model.DefaultRules())
//	items, err := loader.Load(ctx, "https://example.com/shop.json")
type Loader struct {
	fetcher Fetcher
	rules   *model.Rules
	retry   http.RetryPolicy
}

// NewLoader creates a new Loader. A nil rules value uses model.DefaultRules.
func NewLoader(fetcher Fetcher, rules *model.Rules) *Loader {
	if rules == nil {
		rules = model.DefaultRules()
	}
	return &Loader{
		fetcher: fetcher,
		rules:   rules,
		retry:   http.RetryPolicy{MaxRetries: 3, Cooldown: 0.2, Exponent: 4},
	}
}

// WithRetry sets the retry policy used for remote sources.
func (l *Loader) WithRetry(policy http.RetryPolicy) *Loader {
	l.retry = policy
	return l
}

// Load reads the seed at source and validates every item.
//
// An empty source returns Default. Sources starting with http:// or
// https:// are fetched remotely; anything else is read from disk.
func (l *Loader) Load(ctx context.Context, source string) ([]*model.Item, error) {
	if source == "" {
		return Default(), nil
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if l.fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for %s", source)
		}
		data, err = l.fetcher.GetWithRetry(ctx, source, l.retry)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read inventory %s: %w", source, err)
	}

	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse inventory %s: %w", source, err)
	}

	if err := Validate(items, l.rules); err != nil {
		return nil, err
	}

	return items, nil
}

// Parse decodes a JSON seed into items without validating them.
func Parse(data []byte) ([]*model.Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("malformed JSON")
	}

	root := gjson.ParseBytes(data)
	list := root
	if root.IsObject() {
		list = root.Get("items")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("expected an array of items or an object with an items array")
	}

	var (
		items    []*model.Item
		parseErr error
	)
	list.ForEach(func(_, value gjson.Result) bool {
		ji, err := dto.FromResult(value)
		if err != nil {
			parseErr = fmt.Errorf("item %d: %w", len(items), err)
			return false
		}
		items = append(items, ji.ToItem())
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if len(items) == 0 {
		return nil, ErrEmptyInventory
	}

	return items, nil
}

// Validate checks items against the invariants the daily rule relies on.
//
// Every item needs a name. Non-Legendary items must start with quality in
// [model.MinQuality, model.MaxQuality]. Legendary items may carry any
// quality; the first update pins it to model.LegendaryQuality.
func Validate(items []*model.Item, rules *model.Rules) error {
	if len(items) == 0 {
		return ErrEmptyInventory
	}

	for idx, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalidItem, idx)
		}
		if rules.Classify(item.Name).Category == model.CategoryLegendary {
			continue
		}
		if item.Quality < model.MinQuality || item.Quality > model.MaxQuality {
			return fmt.Errorf("%w: %q quality %d outside [%d, %d]",
				ErrInvalidItem, item.Name, item.Quality, model.MinQuality, model.MaxQuality)
		}
	}

	return nil
}
