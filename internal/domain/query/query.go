// Package query holds the parsed user query and its classified intent.
package query

import "github.com/gustohq/gusto/internal/domain/dish"

// Intent is the classified purpose of a user query.
type Intent string

const (
	IntentDishSearch       Intent = "dish_search"
	IntentRestaurantSearch Intent = "restaurant_search"
	IntentGreeting         Intent = "greeting"
	IntentIrrelevant       Intent = "irrelevant"
)

// Relevant reports whether the intent should enter the recommendation
// pipeline. Greetings and irrelevant queries short-circuit to a
// conversational response.
func (i Intent) Relevant() bool {
	return i == IntentDishSearch || i == IntentRestaurantSearch
}

// Query is a raw user query plus everything understood from it.
// Entity fields are empty when the query does not mention them.
type Query struct {
	Raw      string
	Intent   Intent
	Dish     string
	Location string
	Cuisine  string
	// Diet is a dietary preference detected in the query text itself,
	// overriding the profile preference for this request when set.
	Diet dish.Diet
}
