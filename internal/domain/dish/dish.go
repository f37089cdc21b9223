// Package dish holds the menu item domain type and its classifications.
package dish

import (
	"regexp"
	"strings"

	"github.com/gustohq/gusto/internal/domain/taste"
)

// Diet is the dietary classification of a dish.
type Diet string

const (
	// DietVegetarian marks a dish free of meat, poultry, fish, and eggs.
	DietVegetarian Diet = "vegetarian"
	// DietNonVegetarian marks a dish containing animal products other than dairy.
	DietNonVegetarian Diet = "non-vegetarian"
	// DietUnknown marks a dish whose classification could not be determined.
	// Unknown dishes are conservatively retained by the diet filter.
	DietUnknown Diet = "unknown"
)

// Category is the coarse menu section of a dish.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
	CategoryUnknown   Category = "unknown"
)

// Dish is a single menu item. Immutable: With* methods return copies.
type Dish struct {
	name        string
	normalized  string
	description string
	taste       taste.Vector
	diet        Diet
	category    Category
}

// New creates a dish with a normalized comparison name.
// Diet and category start as unknown until classified.
func New(name, description string) Dish {
	return Dish{
		name:        name,
		normalized:  Normalize(name),
		description: description,
		diet:        DietUnknown,
		category:    CategoryUnknown,
	}
}

// Name returns the display name.
func (d Dish) Name() string { return d.name }

// Normalized returns the lowercased, punctuation-stripped comparison name.
func (d Dish) Normalized() string { return d.normalized }

// Description returns the optional menu description.
func (d Dish) Description() string { return d.description }

// Taste returns the derived taste vector.
func (d Dish) Taste() taste.Vector { return d.taste }

// Diet returns the dietary classification.
func (d Dish) Diet() Diet { return d.diet }

// Category returns the menu category.
func (d Dish) Category() Category { return d.category }

// AllergenText returns all allergy-relevant text of the dish.
func (d Dish) AllergenText() string {
	if d.description == "" {
		return d.name
	}
	return d.name + " " + d.description
}

// WithTaste returns a copy with the taste vector set.
func (d Dish) WithTaste(v taste.Vector) Dish {
	d.taste = v
	return d
}

// WithDiet returns a copy with the diet classification set.
func (d Dish) WithDiet(diet Diet) Dish {
	d.diet = diet
	return d
}

// WithCategory returns a copy with the category set.
func (d Dish) WithCategory(c Category) Dish {
	d.category = c
	return d
}

var (
	spaceRE = regexp.MustCompile(`\s+`)
	punctRE = regexp.MustCompile(`[^\w\s-]`)
)

// Normalize lowercases a name, strips punctuation, and collapses whitespace.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = punctRE.ReplaceAllString(s, "")
	s = spaceRE.ReplaceAllString(s, " ")
	return s
}
