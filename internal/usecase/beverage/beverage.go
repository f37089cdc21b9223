// Package beverage annotates recommendations with beer-style pairings.
package beverage

import (
	"strings"

	"github.com/gustohq/gusto/internal/domain/recommend"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/usecase/scoring"
)

// style is a reference beer style with its flavor profile on the shared
// taste dimensions.
type style struct {
	name  string
	taste taste.Vector
	crisp bool // light, low-bitter styles that balance heat
}

var styles = []style{
	{name: "Pilsner", taste: taste.New(0.2, 0.1, 0.1, 0.4, 0.1, 0), crisp: true},
	{name: "Lager", taste: taste.New(0.3, 0.1, 0.1, 0.3, 0.1, 0), crisp: true},
	{name: "Wheat Beer", taste: taste.New(0.5, 0, 0.3, 0.1, 0.1, 0), crisp: true},
	{name: "Pale Ale", taste: taste.New(0.3, 0.1, 0.1, 0.6, 0.2, 0)},
	{name: "IPA", taste: taste.New(0.2, 0.1, 0.2, 0.9, 0.2, 0)},
	{name: "Amber Ale", taste: taste.New(0.5, 0.1, 0.1, 0.4, 0.3, 0)},
	{name: "Brown Ale", taste: taste.New(0.6, 0.1, 0, 0.4, 0.4, 0)},
	{name: "Porter", taste: taste.New(0.5, 0.1, 0.1, 0.7, 0.5, 0)},
	{name: "Stout", taste: taste.New(0.4, 0.2, 0.1, 0.8, 0.6, 0)},
	{name: "Saison", taste: taste.New(0.4, 0.1, 0.4, 0.3, 0.1, 0.2), crisp: true},
	{name: "Sour Ale", taste: taste.New(0.4, 0.1, 0.9, 0.2, 0, 0)},
	{name: "Belgian Tripel", taste: taste.New(0.7, 0, 0.2, 0.3, 0.2, 0.1)},
	{name: "Hefeweizen", taste: taste.New(0.6, 0, 0.2, 0.1, 0.1, 0), crisp: true},
	{name: "Doppelbock", taste: taste.New(0.8, 0.1, 0, 0.3, 0.5, 0)},
}

// menuBeerHints gate the annotation: pairing is only attached when the
// menu suggests the restaurant serves beer.
var menuBeerHints = []string{
	"beer", "ipa", "lager", "ale", "stout", "brew", "draft", "draught", "pitcher", "pint",
}

const (
	pairingStyles = 3
	spicyContrast = 0.6
	crispBonus    = 0.15
)

// Pair returns the beer styles nearest the restaurant's aggregate taste,
// or nil when the menu gives no sign of beer service or the restaurant has
// no taste vector. Spicy menus prefer crisp styles over close flavor
// matches.
func Pair(r restaurant.Restaurant) *recommend.BeveragePairing {
	if !servesBeer(r) {
		return nil
	}
	v := r.Taste()
	if v.IsZero() {
		return nil
	}

	spicy := v[taste.Spicy] >= spicyContrast

	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(styles))
	for _, s := range styles {
		score := scoring.Similarity(v, s.taste)
		if spicy && s.crisp {
			score += crispBonus
		}
		ranked = append(ranked, scored{name: s.name, score: score})
	}

	// Selection sort over a fixed-size table keeps ties on table order.
	names := make([]string, 0, pairingStyles)
	for len(names) < pairingStyles && len(ranked) > 0 {
		best := 0
		for i, s := range ranked {
			if s.score > ranked[best].score {
				best = i
			}
		}
		names = append(names, ranked[best].name)
		ranked = append(ranked[:best], ranked[best+1:]...)
	}

	reason := "matched to the menu's flavor profile"
	if spicy {
		reason = "crisp styles to balance the heat"
	}
	return &recommend.BeveragePairing{Styles: names, Reason: reason}
}

func servesBeer(r restaurant.Restaurant) bool {
	for _, d := range r.Dishes() {
		text := strings.ToLower(d.Name() + " " + d.Description())
		for _, hint := range menuBeerHints {
			if strings.Contains(text, hint) {
				return true
			}
		}
	}
	return false
}
