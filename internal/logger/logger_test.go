package logger

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	log = nil
	os.Setenv("APP_ENV", "test")

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()

	t.Run("WithScreen", func(t *testing.T) {
		newCtx := WithScreen(ctx, "RestaurantDetail")
		assert.Equal(t, "RestaurantDetail", ScreenFrom(newCtx))
	})

	t.Run("ScreenFrom empty", func(t *testing.T) {
		assert.Equal(t, "", ScreenFrom(ctx))
	})

	t.Run("WithRequestID", func(t *testing.T) {
		newCtx := WithRequestID(ctx, "req-123")
		assert.Equal(t, "req-123", RequestIDFrom(newCtx))
	})

	t.Run("FromCtx returns logger with and without fields", func(t *testing.T) {
		assert.NotNil(t, FromCtx(ctx))

		tagged := WithRequestID(WithScreen(ctx, "OrdersList"), "req-456")
		assert.NotNil(t, FromCtx(tagged))
	})
}
