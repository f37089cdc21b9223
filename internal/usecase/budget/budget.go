// Package budget maps a price ceiling onto acceptable price tiers.
package budget

import (
	"github.com/gustohq/gusto/internal/domain/recommend"
	"github.com/gustohq/gusto/internal/domain/restaurant"
)

// Tiers returns the acceptable price tiers for a per-person ceiling in
// dollars. A zero or negative ceiling means no budget constraint.
func Tiers(maxPrice float64) []int {
	switch {
	case maxPrice <= 0:
		return nil
	case maxPrice <= 10:
		return []int{1}
	case maxPrice <= 30:
		return []int{1, 2}
	case maxPrice <= 60:
		return []int{2, 3}
	default:
		return []int{3, 4}
	}
}

// Annotate returns a budget note for the restaurant, or nil when no
// ceiling was given. A restaurant with an unknown price tier is treated
// as within budget.
func Annotate(r restaurant.Restaurant, maxPrice float64) *recommend.BudgetNote {
	tiers := Tiers(maxPrice)
	if tiers == nil {
		return nil
	}
	tier := r.PriceTier()
	within := tier == 0
	for _, t := range tiers {
		if t == tier {
			within = true
			break
		}
	}
	return &recommend.BudgetNote{PriceTier: tier, WithinBudget: within}
}
