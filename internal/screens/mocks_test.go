package screens

import (
	"context"

	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/order"
	"deliverus-client/internal/restaurant"

	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepo is a mock implementation of restaurant.Repository
type MockRestaurantRepo struct {
	mock.Mock
}

func (m *MockRestaurantRepo) List(ctx context.Context) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) GetDetail(ctx context.Context, id uint) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) PopularProducts(ctx context.Context) ([]*restaurant.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Product), args.Error(1)
}

// MockOrderRepo is a mock implementation of order.Repository
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) GetMyOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) GetDetail(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) Create(ctx context.Context, payload order.CreateOrderPayload) (*order.Order, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockNotifier is a mock for notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Success(msg string) {
	m.Called(msg)
}

func (m *MockNotifier) Error(msg string) {
	m.Called(msg)
}

func (m *MockNotifier) FieldErrors(errs []httpapi.FieldError) {
	m.Called(errs)
}
