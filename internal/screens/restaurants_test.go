package screens

import (
	"context"
	"testing"

	"deliverus-client/internal/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRestaurants_Load(t *testing.T) {
	t.Run("Loads list and popular products", func(t *testing.T) {
		repo := new(MockRestaurantRepo)
		repo.On("List", mock.Anything).Return([]*restaurant.Restaurant{
			{ID: 1, Name: "Casa Felix"},
		}, nil)
		repo.On("PopularProducts", mock.Anything).Return([]*restaurant.Product{
			{ID: 5, Name: "Paella"},
		}, nil)

		c := NewRestaurants(repo, new(MockNotifier))
		assert.NoError(t, c.Load(context.Background()))

		assert.Len(t, c.Restaurants(), 1)
		assert.Len(t, c.Popular(), 1)
	})

	t.Run("List failure still loads popular products", func(t *testing.T) {
		repo := new(MockRestaurantRepo)
		notifier := new(MockNotifier)
		repo.On("List", mock.Anything).Return(nil, assert.AnError)
		repo.On("PopularProducts", mock.Anything).Return([]*restaurant.Product{
			{ID: 5, Name: "Paella"},
		}, nil)
		notifier.On("Error", mock.Anything).Return()

		c := NewRestaurants(repo, notifier)
		assert.Error(t, c.Load(context.Background()))

		assert.Empty(t, c.Restaurants())
		assert.Len(t, c.Popular(), 1)
		notifier.AssertNumberOfCalls(t, "Error", 1)
	})

	t.Run("Response arriving after Close is dropped", func(t *testing.T) {
		repo := new(MockRestaurantRepo)
		c := NewRestaurants(repo, new(MockNotifier))

		repo.On("List", mock.Anything).Run(func(args mock.Arguments) {
			c.Close()
		}).Return([]*restaurant.Restaurant{{ID: 1}}, nil)

		assert.NoError(t, c.Load(context.Background()))
		assert.Empty(t, c.Restaurants())
		repo.AssertNotCalled(t, "PopularProducts", mock.Anything)
	})
}
