package orchestrator

import (
	"context"
	"fmt"

	"github.com/gustohq/gusto/internal/domain/query"
	"github.com/gustohq/gusto/internal/domain/recommend"
	"github.com/gustohq/gusto/internal/domain/taste"
	usetaste "github.com/gustohq/gusto/internal/usecase/taste"
)

// profileVector derives a baseline taste vector from the user's favorite
// dishes when the profile carries none.
func profileVector(ctx context.Context, tastes TasteSource, favorites []string) taste.Vector {
	return usetaste.ProfileVector(ctx, tastes, favorites)
}

// responseText renders a short conversational summary of the results.
func responseText(q query.Query, recs []recommend.Recommendation, degraded bool) string {
	top := recs[0].Restaurant.Name()

	var text string
	switch {
	case q.Dish != "":
		text = fmt.Sprintf("Found %d spots for %s. %s looks like your best match.", len(recs), q.Dish, top)
	case q.Cuisine != "":
		text = fmt.Sprintf("Found %d %s places for you. %s looks like your best match.", len(recs), q.Cuisine, top)
	default:
		text = fmt.Sprintf("Found %d places matching your taste. %s looks like your best match.", len(recs), top)
	}

	if degraded {
		text += " (Some checks were unavailable, so double-check allergens with the restaurant.)"
	}
	return text
}
