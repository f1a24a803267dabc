package screens

import (
	"context"
	"fmt"

	"deliverus-client/internal/logger"
	"deliverus-client/internal/notify"
	"deliverus-client/internal/order"
	"deliverus-client/internal/session"

	"github.com/google/uuid"
)

// OrdersList shows the logged-in user's confirmed orders, most recent
// first as the backend returns them. Anonymous sessions get no fetch.
type OrdersList struct {
	lifecycle
	repo     order.Repository
	notifier notify.Notifier

	sess   session.Session
	orders []*order.Order
}

func NewOrdersList(repo order.Repository, notifier notify.Notifier, sess session.Session) *OrdersList {
	return &OrdersList{repo: repo, notifier: notifier, sess: sess}
}

func (c *OrdersList) Load(ctx context.Context) error {
	ctx = logger.WithScreen(ctx, "OrdersList")
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	gen := c.begin()

	if !c.sess.LoggedIn() {
		c.orders = nil
		c.finish(gen)
		return session.ErrNotLoggedIn
	}

	orders, err := c.repo.GetMyOrders(ctx)
	if !c.finish(gen) {
		logger.FromCtx(ctx).Debug("stale orders response dropped")
		return nil
	}
	if err != nil {
		c.notifier.Error(fmt.Sprintf("There was an error while retrieving the orders. %v", err))
		return err
	}

	c.orders = orders
	return nil
}

// SetSession swaps the tracked session; a login-state change clears the
// list and invalidates any in-flight fetch. Callers reload afterwards.
func (c *OrdersList) SetSession(sess session.Session) {
	if sess == c.sess {
		return
	}
	c.sess = sess
	c.orders = nil
	c.Close()
}

func (c *OrdersList) Orders() []*order.Order {
	return c.orders
}
