package config

import (
	"log/slog"
	"os"
)

type Config struct {
	Port          string
	FinnhubAPIKey string
	WebRoot       string
	FrontendURL   string
}

// Load reads configuration from the environment. A missing API key is not
// fatal here: requests that need the upstream fail individually until it is
// set.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		FinnhubAPIKey: os.Getenv("FINNHUB_API_KEY"),
		WebRoot:       getEnv("WEB_ROOT", "web"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
	}

	if cfg.FinnhubAPIKey == "" {
		slog.Warn("FINNHUB_API_KEY is not set, upstream requests will fail")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
