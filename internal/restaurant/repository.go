package restaurant

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/logger"

	"go.uber.org/zap"
)

// Repository is the read side of the restaurants API.
type Repository interface {
	List(ctx context.Context) ([]*Restaurant, error)
	GetDetail(ctx context.Context, id uint) (*Restaurant, error)
	PopularProducts(ctx context.Context) ([]*Product, error)
}

type repository struct {
	api *httpapi.Client
}

func NewRepository(api *httpapi.Client) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context) ([]*Restaurant, error) {
	var restaurants []*Restaurant
	if err := r.api.Get(ctx, "/restaurants", &restaurants); err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	logger.FromCtx(ctx).Debug("restaurants fetched",
		zap.Int("count", len(restaurants)),
	)
	return restaurants, nil
}

func (r *repository) GetDetail(ctx context.Context, id uint) (*Restaurant, error) {
	var restaurant Restaurant
	err := r.api.Get(ctx, fmt.Sprintf("/restaurants/%d", id), &restaurant)
	if err != nil {
		var apiErr *httpapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant %d: %w", id, err)
	}

	logger.FromCtx(ctx).Debug("restaurant detail fetched",
		zap.Uint("restaurant_id", restaurant.ID),
		zap.Int("product_count", len(restaurant.Products)),
	)
	return &restaurant, nil
}

func (r *repository) PopularProducts(ctx context.Context) ([]*Product, error) {
	var products []*Product
	if err := r.api.Get(ctx, "/products/popular", &products); err != nil {
		return nil, fmt.Errorf("failed to get popular products: %w", err)
	}
	return products, nil
}
