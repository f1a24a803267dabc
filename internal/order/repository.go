package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/logger"

	"go.uber.org/zap"
)

// Repository is the orders API surface. The backend owns every Order; the
// client only reads them back and creates new ones.
type Repository interface {
	GetMyOrders(ctx context.Context) ([]*Order, error)
	GetDetail(ctx context.Context, id uint) (*Order, error)
	Create(ctx context.Context, payload CreateOrderPayload) (*Order, error)
}

type repository struct {
	api *httpapi.Client
}

func NewRepository(api *httpapi.Client) Repository {
	return &repository{api: api}
}

// GetMyOrders fetches the logged-in user's orders. The backend returns them
// most recent first; the client keeps that order.
func (r *repository) GetMyOrders(ctx context.Context) ([]*Order, error) {
	var dtos []*orderDTO
	if err := r.api.Get(ctx, "/orders", &dtos); err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	orders := make([]*Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toOrder(dto))
	}

	logger.FromCtx(ctx).Debug("orders fetched", zap.Int("count", len(orders)))
	return orders, nil
}

func (r *repository) GetDetail(ctx context.Context, id uint) (*Order, error) {
	var dto orderDTO
	err := r.api.Get(ctx, fmt.Sprintf("/orders/%d", id), &dto)
	if err != nil {
		var apiErr *httpapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}

	logger.FromCtx(ctx).Debug("order detail fetched",
		zap.Uint("order_id", dto.ID),
		zap.String("status", dto.Status),
	)
	return toOrder(&dto), nil
}

func (r *repository) Create(ctx context.Context, payload CreateOrderPayload) (*Order, error) {
	var dto orderDTO
	if err := r.api.Post(ctx, "/orders", payload, &dto); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logger.FromCtx(ctx).Info("order created",
		zap.Uint("order_id", dto.ID),
		zap.Uint("restaurant_id", payload.RestaurantID),
	)
	return toOrder(&dto), nil
}
