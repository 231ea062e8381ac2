package config

import (
	"os"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_STOCKS_PORT"

	os.Unsetenv(key)
	assert.Equal(t, "8080", getEnv(key, "8080"))

	t.Setenv(key, "9999")
	assert.Equal(t, "9999", getEnv(key, "8080"))
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("FINNHUB_API_KEY")
	os.Unsetenv("WEB_ROOT")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.FinnhubAPIKey)
	assert.Equal(t, "web", cfg.WebRoot)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("FINNHUB_API_KEY", "test-key")
	t.Setenv("FRONTEND_URL", "https://stocks.example.com")

	cfg := Load()
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "test-key", cfg.FinnhubAPIKey)
	assert.Equal(t, "https://stocks.example.com", cfg.FrontendURL)
}
