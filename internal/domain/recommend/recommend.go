// Package recommend holds the ephemeral recommendation output types.
package recommend

import (
	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/restaurant"
)

// DishMatch is a dish ranked within one restaurant's menu.
type DishMatch struct {
	Dish       dish.Dish
	Similarity float64
}

// BeveragePairing is a best-effort beverage annotation.
type BeveragePairing struct {
	Styles []string
	Reason string
}

// BudgetNote is a best-effort budget annotation.
type BudgetNote struct {
	PriceTier    int
	WithinBudget bool
}

// Recommendation is one ranked restaurant with its top dishes and any
// annotations attached during enrichment. Constructed once per query,
// never persisted.
type Recommendation struct {
	Restaurant restaurant.Restaurant
	Score      float64
	Dishes     []DishMatch
	Beverage   *BeveragePairing
	Budget     *BudgetNote
}

// Response is the single caller-visible result of a recommendation request.
type Response struct {
	RequestID       string
	Recommendations []Recommendation
	ResponseText    string
	// Degraded signals that one or more inference sources fell back or
	// failed while producing a best-effort answer.
	Degraded bool
}
