package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/profile"
	"github.com/gustohq/gusto/internal/domain/query"
	"github.com/gustohq/gusto/internal/domain/recommend"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/usecase/scoring"
)

// Outcome is the result of running the filter stages over the candidates.
type Outcome struct {
	Recommendations []recommend.Recommendation
	// ReducedConfidence marks that the allergy stage ran keyword-only.
	ReducedConfidence bool
}

// Service runs the fixed-order filter and ranking stages.
type Service struct {
	diet    *DietClassifier
	allergy *AllergyFilter
	scorer  *scoring.Scorer
	params  RankParams
	logger  *zap.Logger
}

// New creates the filter pipeline.
func New(diet *DietClassifier, allergy *AllergyFilter, scorer *scoring.Scorer, params RankParams, logger *zap.Logger) *Service {
	return &Service{
		diet:    diet,
		allergy: allergy,
		scorer:  scorer,
		params:  params,
		logger:  logger,
	}
}

// Run filters each candidate's menu by diet and allergies, drops
// restaurants outside the requested location or with nothing left to
// serve, and ranks the survivors.
func (s *Service) Run(
	ctx context.Context,
	candidates []restaurant.Restaurant,
	prof profile.Profile,
	q query.Query,
	userVec taste.Vector,
) Outcome {
	pref := prof.Diet
	if q.Diet == dish.DietVegetarian || q.Diet == dish.DietNonVegetarian {
		pref = q.Diet
	}

	var out Outcome
	kept := make([]restaurant.Restaurant, 0, len(candidates))
	for _, r := range candidates {
		if q.Location != "" && !LocationMatch(q.Location, r.Location()) {
			continue
		}

		dishes := s.diet.FilterDiet(ctx, r.Dishes(), pref)

		var reduced bool
		dishes, reduced = s.allergy.Filter(ctx, dishes, prof.Allergies)
		out.ReducedConfidence = out.ReducedConfidence || reduced

		if len(dishes) == 0 {
			continue
		}

		r = r.WithDishes(dishes).WithTaste(scoring.RestaurantVector(dishes))
		kept = append(kept, r)
	}

	s.logger.Debug("Filter stages completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("kept", len(kept)),
		zap.String("diet", string(pref)),
		zap.Int("allergies", len(prof.Allergies)),
	)

	out.Recommendations = Rank(kept, userVec, prof.Favorites, q.Cuisine, s.scorer, s.params)
	return out
}
