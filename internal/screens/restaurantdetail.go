package screens

import (
	"context"
	"fmt"

	"deliverus-client/internal/logger"
	"deliverus-client/internal/notify"
	"deliverus-client/internal/order"
	"deliverus-client/internal/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Checkout is the hand-off from the restaurant detail screen to the
// confirm-order flow: the menu as fetched, the quantity vector and the
// derived prices at the moment the user proceeded.
type Checkout struct {
	RestaurantID uint
	Menu         []restaurant.Product
	Quantities   order.Quantities
	Lines        []order.Line
	Subtotal     decimal.Decimal
}

// RestaurantDetail shows one restaurant's menu and lets the user pick
// quantities. Line and total prices are recomputed on every edit, never
// cached across quantity changes.
type RestaurantDetail struct {
	lifecycle
	repo     restaurant.Repository
	notifier notify.Notifier

	restaurantID uint
	restaurant   *restaurant.Restaurant
	quantities   order.Quantities
	lines        []order.Line
	subtotal     decimal.Decimal
}

func NewRestaurantDetail(repo restaurant.Repository, notifier notify.Notifier, restaurantID uint) *RestaurantDetail {
	return &RestaurantDetail{
		repo:         repo,
		notifier:     notifier,
		restaurantID: restaurantID,
	}
}

// Load fetches the menu and resets every quantity to zero.
func (c *RestaurantDetail) Load(ctx context.Context) error {
	ctx = logger.WithScreen(ctx, "RestaurantDetail")
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	gen := c.begin()

	fetched, err := c.repo.GetDetail(ctx, c.restaurantID)
	if !c.finish(gen) {
		logger.FromCtx(ctx).Debug("stale restaurant detail dropped",
			zap.Uint("restaurant_id", c.restaurantID),
		)
		return nil
	}
	if err != nil {
		c.notifier.Error(fmt.Sprintf("There was an error while retrieving restaurants. %v", err))
		return err
	}

	c.restaurant = fetched
	c.quantities = order.NewQuantities(len(fetched.Products))
	c.recompute()
	return nil
}

// SetQuantity applies a raw quantity edit for the product at index. Invalid
// input is rejected and the previous valid quantity stays in place.
func (c *RestaurantDetail) SetQuantity(index int, raw string) error {
	if c.restaurant == nil {
		return ErrNotLoaded
	}

	qty, err := order.ParseQuantity(raw)
	if err != nil {
		return err
	}
	if err := c.quantities.Set(index, qty); err != nil {
		return err
	}

	c.recompute()
	return nil
}

func (c *RestaurantDetail) recompute() {
	c.lines = order.PriceLines(c.restaurant.Products, c.quantities)
	c.subtotal = order.Subtotal(c.lines)
}

// Checkout hands the current selection off to the confirm flow.
func (c *RestaurantDetail) Checkout() (Checkout, error) {
	if c.restaurant == nil {
		return Checkout{}, ErrNotLoaded
	}

	quantities := make(order.Quantities, len(c.quantities))
	copy(quantities, c.quantities)

	return Checkout{
		RestaurantID: c.restaurant.ID,
		Menu:         c.restaurant.Products,
		Quantities:   quantities,
		Lines:        c.lines,
		Subtotal:     c.subtotal,
	}, nil
}

func (c *RestaurantDetail) Restaurant() *restaurant.Restaurant {
	return c.restaurant
}

func (c *RestaurantDetail) Quantities() order.Quantities {
	return c.quantities
}

func (c *RestaurantDetail) Lines() []order.Line {
	return c.lines
}

func (c *RestaurantDetail) Subtotal() decimal.Decimal {
	return c.subtotal
}
