package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/voiceweather/weather-tool/internal/weather"
)

type AppConfig struct {
	// HTTPTimeout bounds each outbound call to a remote weather API.
	HTTPTimeout time.Duration

	// Base URLs for the two remote services; overridable for tests.
	GeocodingBaseURL string
	ForecastBaseURL  string

	// DefaultUnits applies when a lookup request carries no unit
	// preference.
	DefaultUnits weather.Units

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	// Outbound timeout: default 10 seconds, matching the latency a
	// live voice conversation can tolerate.
	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	cfg.HTTPTimeout = timeout

	cfg.GeocodingBaseURL = os.Getenv("GEOCODING_BASE_URL")
	cfg.ForecastBaseURL = os.Getenv("FORECAST_BASE_URL")

	units, err := weather.ParseUnits(getenvDefault("DEFAULT_UNITS", "metric"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_UNITS: %w", err)
	}
	cfg.DefaultUnits = units

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
