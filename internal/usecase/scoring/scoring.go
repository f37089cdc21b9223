// Package scoring computes taste similarity and favorite-dish boosts.
package scoring

import (
	"math"
	"strings"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/taste"
)

// fuzzyThreshold is the bigram similarity above which two normalized dish
// names are considered the same dish.
const fuzzyThreshold = 0.8

// Similarity returns the cosine similarity of two taste vectors clamped to
// [0, 1]. A negative cosine is floored to 0: taste dimensions are ordinal
// and non-negative, so "opposite preference" has no meaning here. Either
// vector being zero yields 0.
func Similarity(a, b taste.Vector) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// RestaurantVector aggregates a menu into one taste vector as the
// element-wise mean of the classified dishes. An empty menu yields the zero
// vector, which excludes the restaurant from flavor ranking.
func RestaurantVector(dishes []dish.Dish) taste.Vector {
	var vectors []taste.Vector
	for _, d := range dishes {
		if d.Taste().IsZero() {
			continue
		}
		vectors = append(vectors, d.Taste())
	}
	return taste.Mean(vectors)
}

// Scorer applies the similarity-plus-boost scoring formula.
type Scorer struct {
	boost float64
}

// NewScorer creates a scorer with the given favorite-match bonus.
func NewScorer(boost float64) *Scorer {
	return &Scorer{boost: boost}
}

// FavoritesBoost returns the additive bonus when the dish's normalized name
// exactly or fuzzily matches a favorite, 0 otherwise.
func (s *Scorer) FavoritesBoost(d dish.Dish, favorites []string) float64 {
	name := d.Normalized()
	if name == "" {
		return 0
	}
	for _, fav := range favorites {
		favNorm := dish.Normalize(fav)
		if favNorm == "" {
			continue
		}
		if name == favNorm {
			return s.boost
		}
		if strings.Contains(name, favNorm) || strings.Contains(favNorm, name) {
			return s.boost
		}
		if bigramSimilarity(name, favNorm) >= fuzzyThreshold {
			return s.boost
		}
	}
	return 0
}

// MenuBoost returns the favorites bonus when any dish on the menu matches.
func (s *Scorer) MenuBoost(dishes []dish.Dish, favorites []string) float64 {
	for _, d := range dishes {
		if b := s.FavoritesBoost(d, favorites); b > 0 {
			return b
		}
	}
	return 0
}

// Combined adds a boost to a similarity and re-clamps to [0, 1].
func (s *Scorer) Combined(similarity, boost float64) float64 {
	score := similarity + boost
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// bigramSimilarity is the Sorensen-Dice coefficient over character bigrams.
func bigramSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	bigrams := make(map[string]int)
	for i := 0; i < len(a)-1; i++ {
		bigrams[a[i:i+2]]++
	}

	var overlap int
	for i := 0; i < len(b)-1; i++ {
		if bigrams[b[i:i+2]] > 0 {
			bigrams[b[i:i+2]]--
			overlap++
		}
	}
	return 2 * float64(overlap) / float64(len(a)+len(b)-2)
}
