// Package costing computes the total cost of a technical sheet from its
// ingredient lines and the current catalog.
package costing

import (
	"errors"

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"
)

// ErrIngredientNotFound is the named outcome of a failed catalog lookup.
// TotalCost treats it as "skip the line"; other callers may surface it.
var ErrIngredientNotFound = errors.New("ingredient not found in catalog")

// UnitCost returns the unit cost of the first catalog entry with exactly
// the given name. With duplicate names the first match wins, matching how
// the catalog has always behaved.
func UnitCost(catalog []domain.Ingredient, name string) (float64, error) {
	for _, ing := range catalog {
		if ing.Name == name {
			return ing.Cost, nil
		}
	}
	return 0, ErrIngredientNotFound
}

// TotalCost accumulates unit cost × quantity over the lines. Lines with an
// empty ingredient reference, a non-positive quantity, or no catalog match
// contribute zero; a bad line never fails the whole computation. An empty
// line list costs zero against any catalog.
func TotalCost(lines []domain.RecipeLine, catalog []domain.Ingredient) float64 {
	var total float64
	for _, line := range lines {
		if line.Ingredient == "" || line.Quantity <= 0 {
			continue
		}
		unit, err := UnitCost(catalog, line.Ingredient)
		if err != nil {
			continue // Soft data error: unmatched lines are skipped
		}
		total += unit * line.Quantity
	}
	return total
}
