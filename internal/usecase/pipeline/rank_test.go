package pipeline

import (
	"testing"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/usecase/scoring"
)

var rankParams = RankParams{MaxResults: 10, TopDishes: 3}

func spicyUser() taste.Vector {
	return taste.New(0, 0.1, 0, 0, 0.1, 0.9)
}

func buildRestaurant(id, name string, reviews int, dishes ...dish.Dish) restaurant.Restaurant {
	r := restaurant.New(id, name, "Boston", 2, reviews).WithDishes(dishes)
	return r.WithTaste(scoring.RestaurantVector(dishes))
}

func TestRank_SpicyAboveBland(t *testing.T) {
	scorer := scoring.NewScorer(0.15)

	padKraPao := tastyDish("Pad Kra Pao", "stir fry with chili", taste.New(0.1, 0.3, 0, 0, 0.4, 0.9))
	plainRice := tastyDish("Plain Rice", "", taste.New(0.1, 0, 0, 0, 0.1, 0))

	thai := buildRestaurant("1", "Thai Basil", 100, padKraPao)
	bland := buildRestaurant("2", "Rice House", 500, plainRice)

	recs := Rank([]restaurant.Restaurant{bland, thai}, spicyUser(), nil, "", scorer, rankParams)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Restaurant.Name() != "Thai Basil" {
		t.Errorf("expected spicy restaurant first, got %q", recs[0].Restaurant.Name())
	}
	if recs[0].Score <= recs[1].Score {
		t.Errorf("expected strictly higher score first: %f vs %f", recs[0].Score, recs[1].Score)
	}
}

func TestRank_Deterministic(t *testing.T) {
	scorer := scoring.NewScorer(0.15)

	d := tastyDish("Green Curry", "", taste.New(0.2, 0.2, 0, 0, 0.3, 0.8))
	a := buildRestaurant("1", "Aroy Dee", 120, d)
	b := buildRestaurant("2", "Bangkok Bites", 120, d)

	first := Rank([]restaurant.Restaurant{b, a}, spicyUser(), nil, "", scorer, rankParams)
	second := Rank([]restaurant.Restaurant{a, b}, spicyUser(), nil, "", scorer, rankParams)

	for i := range first {
		if first[i].Restaurant.ID() != second[i].Restaurant.ID() {
			t.Fatalf("ordering not deterministic at %d", i)
		}
	}
	// Identical scores and review counts fall back to name order.
	if first[0].Restaurant.Name() != "Aroy Dee" {
		t.Errorf("expected alphabetical tiebreak, got %q first", first[0].Restaurant.Name())
	}
}

func TestRank_ReviewCountTiebreak(t *testing.T) {
	scorer := scoring.NewScorer(0.15)

	d := tastyDish("Green Curry", "", taste.New(0.2, 0.2, 0, 0, 0.3, 0.8))
	popular := buildRestaurant("1", "Zest", 900, d)
	quiet := buildRestaurant("2", "Aroy Dee", 10, d)

	recs := Rank([]restaurant.Restaurant{quiet, popular}, spicyUser(), nil, "", scorer, rankParams)
	if recs[0].Restaurant.Name() != "Zest" {
		t.Errorf("expected higher review count first, got %q", recs[0].Restaurant.Name())
	}
}

func TestRank_FavoriteBoostApplied(t *testing.T) {
	scorer := scoring.NewScorer(0.15)

	margherita := tastyDish("Margherita Pizza", "", taste.New(0.2, 0.6, 0.1, 0, 0.7, 0.1))
	plain := tastyDish("Cheese Pizza", "", taste.New(0.2, 0.6, 0.1, 0, 0.7, 0.1))

	withFav := buildRestaurant("1", "Napoli", 100, margherita)
	without := buildRestaurant("2", "Slice City", 100, plain)

	recs := Rank(
		[]restaurant.Restaurant{without, withFav},
		taste.New(0.2, 0.6, 0.1, 0, 0.7, 0.1),
		[]string{"Margherita Pizza"},
		"", scorer, rankParams,
	)
	if recs[0].Restaurant.Name() != "Napoli" {
		t.Errorf("expected boosted restaurant first, got %q", recs[0].Restaurant.Name())
	}
	// Self-similarity is 1, so the boosted score re-clamps to 1.
	if recs[0].Score != 1 {
		t.Errorf("expected clamped score 1, got %f", recs[0].Score)
	}
}

func TestRank_ZeroVectorExcluded(t *testing.T) {
	scorer := scoring.NewScorer(0.15)

	empty := restaurant.New("1", "Ghost Kitchen", "Boston", 2, 50)

	recs := Rank([]restaurant.Restaurant{empty}, spicyUser(), nil, "", scorer, rankParams)
	if len(recs) != 0 {
		t.Errorf("expected zero-vector restaurant excluded, got %d", len(recs))
	}
}

func TestRank_TopDishesLimitedAndOrdered(t *testing.T) {
	scorer := scoring.NewScorer(0.15)

	dishes := []dish.Dish{
		tastyDish("Mild Soup", "", taste.New(0.2, 0.2, 0, 0, 0.2, 0)),
		tastyDish("Fire Noodles", "", taste.New(0, 0.2, 0, 0, 0.2, 1)),
		tastyDish("Chili Wings", "", taste.New(0, 0.3, 0, 0, 0.3, 0.9)),
		tastyDish("Plain Bread", "", taste.New(0.1, 0.1, 0, 0, 0, 0)),
	}
	r := buildRestaurant("1", "Heat", 10, dishes...)

	recs := Rank([]restaurant.Restaurant{r}, spicyUser(), nil, "", scorer, rankParams)
	if len(recs[0].Dishes) != 3 {
		t.Fatalf("expected top-3 dishes, got %d", len(recs[0].Dishes))
	}
	if recs[0].Dishes[0].Dish.Name() != "Fire Noodles" {
		t.Errorf("expected spiciest dish first, got %q", recs[0].Dishes[0].Dish.Name())
	}
}

func TestRank_MaxResults(t *testing.T) {
	scorer := scoring.NewScorer(0.15)
	d := tastyDish("Curry", "", taste.New(0.2, 0.2, 0, 0, 0.3, 0.7))

	var rs []restaurant.Restaurant
	for i := 0; i < 15; i++ {
		rs = append(rs, buildRestaurant(string(rune('a'+i)), string(rune('A'+i)), i, d))
	}

	recs := Rank(rs, spicyUser(), nil, "", scorer, RankParams{MaxResults: 10, TopDishes: 3})
	if len(recs) != 10 {
		t.Errorf("expected 10 results, got %d", len(recs))
	}
}

func TestRank_CuisineBoost(t *testing.T) {
	scorer := scoring.NewScorer(0.15)

	d := tastyDish("Green Curry", "", taste.New(0.2, 0.2, 0, 0, 0.3, 0.8))
	thaiNamed := buildRestaurant("1", "Thai Basil", 100, d)
	other := buildRestaurant("2", "Basil House", 100, d)

	recs := Rank([]restaurant.Restaurant{other, thaiNamed}, spicyUser(), nil, "thai", scorer, rankParams)
	if recs[0].Restaurant.Name() != "Thai Basil" {
		t.Errorf("expected cuisine-matching restaurant first, got %q", recs[0].Restaurant.Name())
	}
}
