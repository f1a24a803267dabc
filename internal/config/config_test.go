package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://localhost:3000")
		t.Setenv("ACCESS_TOKEN", "token-123")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
		assert.Equal(t, "token-123", cfg.AccessToken)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	})

	t.Run("Custom timeout", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://localhost:3000")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "30")

		cfg := LoadConfig()

		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	})
}
