// Package restaurant holds the restaurant domain type.
package restaurant

import (
	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/taste"
)

// Restaurant is a discovery candidate with its menu.
// Immutable: With* methods return copies.
type Restaurant struct {
	id          string
	name        string
	location    string
	priceTier   int // ordinal 1-4, 0 when unknown
	rating      float64
	reviewCount int
	dishes      []dish.Dish
	taste       taste.Vector
	photos      []string
	url         string
}

// New creates a restaurant candidate.
func New(id, name, location string, priceTier, reviewCount int) Restaurant {
	if priceTier < 0 || priceTier > 4 {
		priceTier = 0
	}
	return Restaurant{
		id:          id,
		name:        name,
		location:    location,
		priceTier:   priceTier,
		reviewCount: reviewCount,
	}
}

// ID returns the source identifier.
func (r Restaurant) ID() string { return r.id }

// Name returns the display name.
func (r Restaurant) Name() string { return r.name }

// Location returns the city-level location string.
func (r Restaurant) Location() string { return r.location }

// PriceTier returns the ordinal price tier (1-4), 0 when unknown.
func (r Restaurant) PriceTier() int { return r.priceTier }

// Rating returns the average review rating.
func (r Restaurant) Rating() float64 { return r.rating }

// ReviewCount returns the number of reviews, used as a ranking tiebreaker.
func (r Restaurant) ReviewCount() int { return r.reviewCount }

// Dishes returns the menu items.
func (r Restaurant) Dishes() []dish.Dish { return r.dishes }

// Taste returns the aggregate taste vector derived from the menu.
func (r Restaurant) Taste() taste.Vector { return r.taste }

// Photos returns pass-through photo URLs.
func (r Restaurant) Photos() []string { return r.photos }

// URL returns the pass-through source page URL.
func (r Restaurant) URL() string { return r.url }

// WithDishes returns a copy with the menu replaced.
func (r Restaurant) WithDishes(dishes []dish.Dish) Restaurant {
	r.dishes = dishes
	return r
}

// WithTaste returns a copy with the aggregate taste vector set.
func (r Restaurant) WithTaste(v taste.Vector) Restaurant {
	r.taste = v
	return r
}

// WithRating returns a copy with the average rating set.
func (r Restaurant) WithRating(rating float64) Restaurant {
	r.rating = rating
	return r
}

// WithPhotos returns a copy with pass-through photos attached.
func (r Restaurant) WithPhotos(photos []string) Restaurant {
	r.photos = photos
	return r
}

// WithURL returns a copy with the source page URL set.
func (r Restaurant) WithURL(url string) Restaurant {
	r.url = url
	return r
}
