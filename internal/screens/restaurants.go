package screens

import (
	"context"
	"fmt"

	"deliverus-client/internal/logger"
	"deliverus-client/internal/notify"
	"deliverus-client/internal/restaurant"

	"github.com/google/uuid"
)

// Restaurants lists every restaurant plus the popular products strip.
// Works without a session.
type Restaurants struct {
	lifecycle
	repo     restaurant.Repository
	notifier notify.Notifier

	restaurants []*restaurant.Restaurant
	popular     []*restaurant.Product
}

func NewRestaurants(repo restaurant.Repository, notifier notify.Notifier) *Restaurants {
	return &Restaurants{repo: repo, notifier: notifier}
}

// Load fetches the restaurant list and the popular products. The two
// fetches fail independently: one failing still renders the other.
func (c *Restaurants) Load(ctx context.Context) error {
	ctx = logger.WithScreen(ctx, "Restaurants")
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	gen := c.begin()

	restaurants, err := c.repo.List(ctx)
	if c.stale(gen) {
		logger.FromCtx(ctx).Debug("stale restaurants response dropped")
		return nil
	}
	if err != nil {
		c.notifier.Error(fmt.Sprintf("There was an error while retrieving the restaurants. %v", err))
	} else {
		c.restaurants = restaurants
	}

	popular, popErr := c.repo.PopularProducts(ctx)
	if !c.finish(gen) {
		logger.FromCtx(ctx).Debug("stale popular products response dropped")
		return nil
	}
	if popErr != nil {
		c.notifier.Error(fmt.Sprintf("There was an error while retrieving the popular products. %v", popErr))
	} else {
		c.popular = popular
	}

	if err != nil {
		return err
	}
	return popErr
}

func (c *Restaurants) Restaurants() []*restaurant.Restaurant {
	return c.restaurants
}

func (c *Restaurants) Popular() []*restaurant.Product {
	return c.popular
}
