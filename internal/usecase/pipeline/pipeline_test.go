package pipeline

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/profile"
	"github.com/gustohq/gusto/internal/domain/query"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/usecase/scoring"
)

func newTestPipeline(mc *mockCompleter) *Service {
	return New(
		NewDietClassifier(mc, nil, zap.NewNop()),
		NewAllergyFilter(mc, zap.NewNop()),
		scoring.NewScorer(0.15),
		RankParams{MaxResults: 10, TopDishes: 3},
		zap.NewNop(),
	)
}

func candidate(id, name, location string, dishes ...dish.Dish) restaurant.Restaurant {
	return restaurant.New(id, name, location, 2, 100).WithDishes(dishes)
}

func TestRun_DietAndAllergyStages(t *testing.T) {
	// Diet classification falls back to veg; allergy collaborator keeps all.
	mc := &mockCompleter{replyFn: func(prompt string) (string, error) {
		return "1,2,3", nil
	}}
	p := newTestPipeline(mc)

	r := candidate("1", "Corner Kitchen", "Boston",
		tastyDish("Chicken Wings", "", taste.New(0, 0.4, 0, 0, 0.5, 0.3)),
		tastyDish("Paneer Tikka", "grilled paneer", taste.New(0.2, 0.3, 0.1, 0, 0.3, 0.4)),
	)

	out := p.Run(context.Background(),
		[]restaurant.Restaurant{r},
		profile.Profile{Diet: dish.DietVegetarian},
		query.Query{Raw: "veg food", Diet: dish.DietVegetarian},
		taste.New(0.2, 0.3, 0.1, 0, 0.3, 0.4),
	)
	if len(out.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(out.Recommendations))
	}
	menu := out.Recommendations[0].Restaurant.Dishes()
	if len(menu) != 1 || menu[0].Name() != "Paneer Tikka" {
		t.Fatalf("expected only the vegetarian dish to survive, got %d dishes", len(menu))
	}
}

func TestRun_AllergyReducedConfidence(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) {
		return "", errors.New("api down")
	}}
	p := newTestPipeline(mc)

	r := candidate("1", "Pier Shack", "Boston",
		tastyDish("Shrimp Roll", "", taste.New(0.2, 0.5, 0, 0, 0.6, 0)),
		tastyDish("Garden Salad", "", taste.New(0.2, 0.1, 0.2, 0.1, 0.1, 0)),
	)

	out := p.Run(context.Background(),
		[]restaurant.Restaurant{r},
		profile.Profile{Allergies: []string{"shellfish"}},
		query.Query{Raw: "lunch"},
		taste.New(0.2, 0.2, 0.1, 0, 0.2, 0),
	)
	if !out.ReducedConfidence {
		t.Error("expected reduced-confidence outcome")
	}
	menu := out.Recommendations[0].Restaurant.Dishes()
	for _, d := range menu {
		if d.Name() == "Shrimp Roll" {
			t.Fatal("shellfish dish must be excluded even in keyword-only mode")
		}
	}
}

func TestRun_LocationFilter(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "1", nil }}
	p := newTestPipeline(mc)

	d := tastyDish("Green Curry", "", taste.New(0.2, 0.2, 0, 0, 0.3, 0.8))
	boston := candidate("1", "Thai Basil", "Boston", d)
	seattle := candidate("2", "Thai North", "Seattle", d)

	out := p.Run(context.Background(),
		[]restaurant.Restaurant{boston, seattle},
		profile.Profile{},
		query.Query{Raw: "thai in boston", Location: "boston"},
		taste.New(0, 0.1, 0, 0, 0.1, 0.9),
	)
	if len(out.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(out.Recommendations))
	}
	if out.Recommendations[0].Restaurant.Name() != "Thai Basil" {
		t.Errorf("expected Boston restaurant, got %q", out.Recommendations[0].Restaurant.Name())
	}
}

func TestRun_EmptyMenuDropsRestaurant(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "none", nil }}
	p := newTestPipeline(mc)

	r := candidate("1", "Nut House", "Boston",
		tastyDish("Peanut Stew", "", taste.New(0.3, 0.4, 0, 0.1, 0.5, 0)),
	)

	out := p.Run(context.Background(),
		[]restaurant.Restaurant{r},
		profile.Profile{Allergies: []string{"nuts"}},
		query.Query{Raw: "dinner"},
		taste.New(0.3, 0.4, 0, 0.1, 0.5, 0),
	)
	if len(out.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(out.Recommendations))
	}
}

func TestRun_QueryDietOverridesProfile(t *testing.T) {
	mc := &mockCompleter{replyFn: func(string) (string, error) { return "1", nil }}
	p := newTestPipeline(mc)

	r := candidate("1", "Grill", "Boston",
		tastyDish("Beef Steak", "", taste.New(0, 0.4, 0, 0, 0.8, 0.1)),
	)

	out := p.Run(context.Background(),
		[]restaurant.Restaurant{r},
		profile.Profile{Diet: dish.DietVegetarian},
		query.Query{Raw: "steak please", Diet: dish.DietNonVegetarian},
		taste.New(0, 0.4, 0, 0, 0.8, 0.1),
	)
	if len(out.Recommendations) != 1 {
		t.Fatalf("expected the query diet to override the profile, got %d results", len(out.Recommendations))
	}
}
