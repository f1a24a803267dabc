package screens

import (
	"context"
	"testing"

	"deliverus-client/internal/order"
	"deliverus-client/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrdersList_Load(t *testing.T) {
	t.Run("Success keeps backend ordering", func(t *testing.T) {
		repo := new(MockOrderRepo)
		repo.On("GetMyOrders", mock.Anything).Return([]*order.Order{
			{ID: 42}, {ID: 7},
		}, nil)

		c := NewOrdersList(repo, new(MockNotifier), sessWithAddress())
		assert.NoError(t, c.Load(context.Background()))

		assert.Len(t, c.Orders(), 2)
		assert.Equal(t, uint(42), c.Orders()[0].ID)
	})

	t.Run("Anonymous session issues no fetch", func(t *testing.T) {
		repo := new(MockOrderRepo)

		c := NewOrdersList(repo, new(MockNotifier), session.Anonymous())
		err := c.Load(context.Background())

		assert.ErrorIs(t, err, session.ErrNotLoggedIn)
		assert.Nil(t, c.Orders())
		repo.AssertNotCalled(t, "GetMyOrders", mock.Anything)
	})

	t.Run("Fetch failure keeps prior state and notifies", func(t *testing.T) {
		repo := new(MockOrderRepo)
		notifier := new(MockNotifier)
		repo.On("GetMyOrders", mock.Anything).Return([]*order.Order{{ID: 1}}, nil).Once()

		c := NewOrdersList(repo, notifier, sessWithAddress())
		assert.NoError(t, c.Load(context.Background()))

		repo.On("GetMyOrders", mock.Anything).Return(nil, assert.AnError).Once()
		notifier.On("Error", mock.Anything).Return()

		assert.Error(t, c.Load(context.Background()))
		assert.Len(t, c.Orders(), 1, "previous list stays on screen")
	})

	t.Run("Response arriving after Close is dropped", func(t *testing.T) {
		repo := new(MockOrderRepo)
		c := NewOrdersList(repo, new(MockNotifier), sessWithAddress())

		repo.On("GetMyOrders", mock.Anything).Run(func(args mock.Arguments) {
			c.Close()
		}).Return([]*order.Order{{ID: 1}}, nil)

		assert.NoError(t, c.Load(context.Background()))
		assert.Nil(t, c.Orders())
	})
}

func TestOrdersList_SetSession(t *testing.T) {
	repo := new(MockOrderRepo)
	repo.On("GetMyOrders", mock.Anything).Return([]*order.Order{{ID: 1}}, nil)

	c := NewOrdersList(repo, new(MockNotifier), sessWithAddress())
	assert.NoError(t, c.Load(context.Background()))
	assert.Len(t, c.Orders(), 1)

	// logging out clears the list
	c.SetSession(session.Anonymous())
	assert.Nil(t, c.Orders())
	assert.ErrorIs(t, c.Load(context.Background()), session.ErrNotLoggedIn)

	// same session is a no-op
	before := c.Orders()
	c.SetSession(session.Anonymous())
	assert.Equal(t, before, c.Orders())
}
