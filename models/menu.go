package models

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Catalog maps category name -> item name -> unit price. It is static
// configuration: loaded once at startup, never edited at runtime.
type Catalog map[string]map[string]decimal.Decimal

// DefaultCatalog mirrors the reference deployment's menu, category case
// included.
func DefaultCatalog() Catalog {
	return Catalog{
		"Drinks": {
			"Coffee": decimal.RequireFromString("3.00"),
			"Tea":    decimal.RequireFromString("2.50"),
		},
		"Snacks": {
			"Sandwich": decimal.RequireFromString("5.00"),
			"Cake":     decimal.RequireFromString("4.00"),
		},
		"meals": {
			"burger": decimal.RequireFromString("8.00"),
			"fries":  decimal.RequireFromString("3.50"),
		},
	}
}

// LoadCatalog reads a catalog from a JSON file, falling back to the
// built-in menu when no path is configured.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse menu file %s: %w", path, err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("menu file %s contains no categories", path)
	}
	for category, items := range catalog {
		if len(items) == 0 {
			return nil, fmt.Errorf("menu category %q contains no items", category)
		}
		for name, price := range items {
			if price.IsNegative() {
				return nil, fmt.Errorf("menu item %q has negative price %s", name, price)
			}
		}
	}
	return catalog, nil
}

// PriceOf looks an item up across all categories. Item names are unique
// in the catalog, so the first hit wins.
func (c Catalog) PriceOf(name string) (decimal.Decimal, bool) {
	for _, items := range c {
		if price, ok := items[name]; ok {
			return price, true
		}
	}
	return decimal.Zero, false
}
