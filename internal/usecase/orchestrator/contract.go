package orchestrator

import (
	"context"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/profile"
	"github.com/gustohq/gusto/internal/domain/query"
	"github.com/gustohq/gusto/internal/domain/restaurant"
	"github.com/gustohq/gusto/internal/domain/taste"
	"github.com/gustohq/gusto/internal/usecase/pipeline"
	usetaste "github.com/gustohq/gusto/internal/usecase/taste"
)

// Understander classifies a raw query and extracts its entities.
type Understander interface {
	Understand(ctx context.Context, raw string) query.Query
}

// Discovery finds candidate restaurants for a term near a location.
type Discovery interface {
	Search(ctx context.Context, term, location string) ([]restaurant.Restaurant, error)
}

// MenuSource resolves a restaurant's menu into candidate dishes.
type MenuSource interface {
	Menu(ctx context.Context, r restaurant.Restaurant) ([]dish.Dish, error)
}

// TasteSource infers taste vectors for free text. Blend never fails
// outward; it flags degradation instead.
type TasteSource interface {
	Name() string
	Infer(ctx context.Context, text string) (taste.Vector, error)
	Blend(ctx context.Context, text string) usetaste.Result
}

// Ranker runs the filter and ranking stages over the candidates.
type Ranker interface {
	Run(ctx context.Context, candidates []restaurant.Restaurant, prof profile.Profile, q query.Query, userVec taste.Vector) pipeline.Outcome
}
