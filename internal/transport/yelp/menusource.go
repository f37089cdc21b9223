package yelp

import (
	"context"

	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/domain/dish"
	"github.com/gustohq/gusto/internal/domain/restaurant"
)

// Menu resolves a restaurant's menu into candidate dishes. A business with
// no published menu URL yields an empty menu, not an error.
func (c *Client) Menu(ctx context.Context, r restaurant.Restaurant) ([]dish.Dish, error) {
	details, err := c.BusinessDetails(ctx, r.ID())
	if err != nil {
		return nil, err
	}
	if details.MenuURL == "" {
		c.logger.Debug("No menu URL published", zap.String("restaurant", r.Name()))
		return nil, nil
	}

	lines, err := c.FetchMenu(ctx, details.MenuURL)
	if err != nil {
		return nil, err
	}

	dishes := make([]dish.Dish, 0, len(lines))
	for _, line := range lines {
		dishes = append(dishes, dish.New(line, ""))
	}
	return dishes, nil
}
