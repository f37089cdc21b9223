// Package profile holds the read-only user preference input.
package profile

import (
	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/taste"
)

// Profile is the user's taste and constraint input. It is owned by an
// external profile store and never mutated by this service.
type Profile struct {
	// Taste is the baseline preference vector. When zero, a vector is
	// derived from the favorite dishes at request time.
	Taste taste.Vector
	// Diet is the stated dietary preference. DietUnknown means no preference.
	Diet dish.Diet
	// Allergies is the set of allergy keywords (e.g. "shellfish", "nuts").
	Allergies []string
	// Favorites is the set of previously favorited dish names.
	// Each match against a candidate menu contributes a score boost.
	Favorites []string
	// BudgetCeiling is the per-person spend limit in the user's currency.
	// Zero means no budget constraint.
	BudgetCeiling float64
}
