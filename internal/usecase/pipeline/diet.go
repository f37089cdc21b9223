// Package pipeline applies the fixed-order filter stages over discovery
// candidates: diet, allergy, location, then ranking.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
)

var nonVegKeywords = []string{
	"chicken", "mutton", "lamb", "beef", "pork", "fish", "prawn", "shrimp",
	"crab", "lobster", "meat", "bacon", "sausage", "ham", "turkey", "duck",
	"egg", "eggs", "omelette", "omelet", "seafood", "salmon", "tuna",
}

const dietPromptTemplate = `Classify this dish as either 'veg' or 'non-veg'.

Dish: %s

Rules:
- 'non-veg' includes: meat, poultry, fish, seafood, eggs, and any animal products (except dairy)
- 'veg' includes: vegetables, fruits, dairy, grains, legumes, plant-based items
- If unclear or dish name doesn't specify, default to 'veg'

Respond with ONLY the word 'veg' or 'non-veg', nothing else.`

const dietCacheKind = "diet"

// DietClassifier labels dishes vegetarian or non-vegetarian. Explicit
// non-veg keywords decide immediately; everything else goes to the
// collaborator, with unknown on failure.
type DietClassifier struct {
	completer Completer
	cache     Cache
	logger    *zap.Logger
}

// NewDietClassifier creates a diet classifier. Cache may be nil.
func NewDietClassifier(completer Completer, cache Cache, logger *zap.Logger) *DietClassifier {
	return &DietClassifier{completer: completer, cache: cache, logger: logger}
}

// Classify returns the dietary classification of a dish.
func (c *DietClassifier) Classify(ctx context.Context, d dish.Dish) dish.Diet {
	text := strings.ToLower(d.AllergenText())
	for _, kw := range nonVegKeywords {
		if strings.Contains(text, kw) {
			return dish.DietNonVegetarian
		}
	}

	key := d.Normalized()
	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, dietCacheKind, key); ok {
			return dish.Diet(cached)
		}
	}

	reply, err := c.completer.Complete(ctx, fmt.Sprintf(dietPromptTemplate, d.Name()))
	if err != nil {
		c.logger.Warn("Diet classification unavailable",
			zap.String("dish", d.Name()),
			zap.Error(err),
		)
		return dish.DietUnknown
	}

	diet := dish.DietVegetarian
	if strings.Contains(strings.ToLower(reply), "non") {
		diet = dish.DietNonVegetarian
	}
	if c.cache != nil {
		c.cache.Put(ctx, dietCacheKind, key, string(diet))
	}
	return diet
}

// FilterDiet drops dishes conflicting with the stated preference.
// Unknown classifications are conservatively retained. No stated
// preference passes everything through.
func (c *DietClassifier) FilterDiet(ctx context.Context, dishes []dish.Dish, pref dish.Diet) []dish.Dish {
	if pref != dish.DietVegetarian && pref != dish.DietNonVegetarian {
		return dishes
	}

	kept := make([]dish.Dish, 0, len(dishes))
	for _, d := range dishes {
		diet := d.Diet()
		if diet == dish.DietUnknown {
			diet = c.Classify(ctx, d)
		}
		if diet != dish.DietUnknown && diet != pref {
			continue
		}
		kept = append(kept, d.WithDiet(diet))
	}
	return kept
}
