package pipeline

import (
	"sort"
	"strings"

	"github.com/gustohq/gusto/internal/domain/recommend"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/usecase/scoring"
)

// cuisineBoost is the additive bonus when the detected cuisine appears in
// the restaurant's name or menu.
const cuisineBoost = 0.1

// RankParams bounds the ranked output.
type RankParams struct {
	MaxResults int
	TopDishes  int
}

// Rank scores the remaining restaurants by similarity plus boosts and
// returns the top results with their best dishes. Restaurants without an
// aggregate taste vector are dropped from flavor ranking. Ordering is
// deterministic: score, then review count, then name.
func Rank(
	restaurants []restaurant.Restaurant,
	userVec taste.Vector,
	favorites []string,
	cuisine string,
	scorer *scoring.Scorer,
	params RankParams,
) []recommend.Recommendation {
	recs := make([]recommend.Recommendation, 0, len(restaurants))
	for _, r := range restaurants {
		if r.Taste().IsZero() {
			continue
		}

		boost := scorer.MenuBoost(r.Dishes(), favorites)
		if cuisine != "" && mentionsCuisine(r, cuisine) {
			boost += cuisineBoost
		}
		score := scorer.Combined(scoring.Similarity(userVec, r.Taste()), boost)

		recs = append(recs, recommend.Recommendation{
			Restaurant: r,
			Score:      score,
			Dishes:     topDishes(r, userVec, favorites, scorer, params.TopDishes),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		ri, rj := recs[i].Restaurant, recs[j].Restaurant
		if ri.ReviewCount() != rj.ReviewCount() {
			return ri.ReviewCount() > rj.ReviewCount()
		}
		return ri.Name() < rj.Name()
	})

	if params.MaxResults > 0 && len(recs) > params.MaxResults {
		recs = recs[:params.MaxResults]
	}
	return recs
}

// topDishes ranks one restaurant's menu by the same similarity-plus-boost
// formula and keeps the best n.
func topDishes(r restaurant.Restaurant, userVec taste.Vector, favorites []string, scorer *scoring.Scorer, n int) []recommend.DishMatch {
	matches := make([]recommend.DishMatch, 0, len(r.Dishes()))
	for _, d := range r.Dishes() {
		score := scorer.Combined(
			scoring.Similarity(userVec, d.Taste()),
			scorer.FavoritesBoost(d, favorites),
		)
		matches = append(matches, recommend.DishMatch{Dish: d, Similarity: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Dish.Name() < matches[j].Dish.Name()
	})

	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

func mentionsCuisine(r restaurant.Restaurant, cuisine string) bool {
	if strings.Contains(strings.ToLower(r.Name()), cuisine) {
		return true
	}
	for _, d := range r.Dishes() {
		if strings.Contains(strings.ToLower(d.Name()), cuisine) {
			return true
		}
	}
	return false
}
