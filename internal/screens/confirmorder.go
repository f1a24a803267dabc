package screens

import (
	"context"
	"errors"
	"fmt"

	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/logger"
	"deliverus-client/internal/notify"
	"deliverus-client/internal/order"
	"deliverus-client/internal/restaurant"
	"deliverus-client/internal/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConfirmOrder re-displays the hand-off from the restaurant detail screen,
// lets the user confirm the delivery address and drives the submission
// flow. Discarding returns to the detail screen with nothing submitted.
type ConfirmOrder struct {
	lifecycle
	repo     restaurant.Repository
	flow     *order.Flow
	notifier notify.Notifier

	sess      session.Session
	checkout  Checkout
	address   string
	rest      *restaurant.Restaurant
	onDiscard func()
}

func NewConfirmOrder(
	repo restaurant.Repository,
	flow *order.Flow,
	notifier notify.Notifier,
	sess session.Session,
	checkout Checkout,
	onDiscard func(),
) *ConfirmOrder {
	return &ConfirmOrder{
		repo:      repo,
		flow:      flow,
		notifier:  notifier,
		sess:      sess,
		checkout:  checkout,
		address:   sess.Address,
		onDiscard: onDiscard,
	}
}

// Load re-fetches the restaurant so the confirmation shows fresh product
// data and the restaurant's shipping cost.
func (c *ConfirmOrder) Load(ctx context.Context) error {
	ctx = logger.WithScreen(ctx, "ConfirmOrder")
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	gen := c.begin()

	fetched, err := c.repo.GetDetail(ctx, c.checkout.RestaurantID)
	if !c.finish(gen) {
		logger.FromCtx(ctx).Debug("stale restaurant detail dropped")
		return nil
	}
	if err != nil {
		c.notifier.Error(fmt.Sprintf("There was a problem while retrieving the products. %v", err))
		return err
	}

	c.rest = fetched
	return nil
}

// SetAddress overrides the session's default delivery address.
func (c *ConfirmOrder) SetAddress(address string) {
	c.address = address
}

func (c *ConfirmOrder) Address() string {
	return c.address
}

func (c *ConfirmOrder) Lines() []order.Line {
	return c.checkout.Lines
}

func (c *ConfirmOrder) Subtotal() decimal.Decimal {
	return c.checkout.Subtotal
}

func (c *ConfirmOrder) ShippingCosts() decimal.Decimal {
	if c.rest == nil {
		return decimal.Zero
	}
	return c.rest.ShippingCosts
}

func (c *ConfirmOrder) Total() decimal.Decimal {
	return order.Total(c.checkout.Subtotal, c.ShippingCosts())
}

// Confirm builds a fresh draft from the selection and the current address
// and submits it. On failure the flow keeps the draft's errors available
// for display and Confirm can be called again after correction.
func (c *ConfirmOrder) Confirm(ctx context.Context) (*order.Order, error) {
	ctx = logger.WithScreen(ctx, "ConfirmOrder")
	ctx = logger.WithRequestID(ctx, uuid.NewString())

	draft, err := order.BuildDraft(
		c.checkout.Menu,
		c.checkout.Quantities,
		c.checkout.RestaurantID,
		c.address,
		c.ShippingCosts(),
	)
	if err != nil {
		if errors.Is(err, order.ErrEmptyOrder) {
			c.notifier.Error("Your order is empty. Please select at least one product.")
		}
		return nil, err
	}

	if err := c.flow.Begin(draft); err != nil {
		return nil, err
	}
	return c.flow.Submit(ctx)
}

// Discard abandons the checkout; the draft is destroyed unsubmitted.
func (c *ConfirmOrder) Discard() {
	c.flow.Discard()
	if c.onDiscard != nil {
		c.onDiscard()
	}
}

func (c *ConfirmOrder) FieldErrors() []httpapi.FieldError {
	return c.flow.FieldErrors()
}

func (c *ConfirmOrder) Restaurant() *restaurant.Restaurant {
	return c.rest
}
