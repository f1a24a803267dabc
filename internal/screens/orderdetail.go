package screens

import (
	"context"
	"fmt"

	"deliverus-client/internal/logger"
	"deliverus-client/internal/notify"
	"deliverus-client/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderDetail shows one confirmed order. Prices are the server-frozen
// record; the controller never recomputes them from current menu prices.
type OrderDetail struct {
	lifecycle
	repo     order.Repository
	notifier notify.Notifier

	orderID uint
	order   *order.Order
}

func NewOrderDetail(repo order.Repository, notifier notify.Notifier, orderID uint) *OrderDetail {
	return &OrderDetail{repo: repo, notifier: notifier, orderID: orderID}
}

func (c *OrderDetail) Load(ctx context.Context) error {
	ctx = logger.WithScreen(ctx, "OrderDetail")
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	gen := c.begin()

	fetched, err := c.repo.GetDetail(ctx, c.orderID)
	if !c.finish(gen) {
		logger.FromCtx(ctx).Debug("stale order detail dropped",
			zap.Uint("order_id", c.orderID),
		)
		return nil
	}
	if err != nil {
		c.notifier.Error(fmt.Sprintf("There was an error while retrieving your orders. %v", err))
		return err
	}

	c.order = fetched
	return nil
}

func (c *OrderDetail) Order() *order.Order {
	return c.order
}
