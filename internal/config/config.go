// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// OpenWeatherAPIKey authenticates calls to the OpenWeatherMap forecast
	// API. Optional; when empty, forecasts fall back to seasonal patterns.
	OpenWeatherAPIKey string

	// CurrencyAPIKey authenticates calls to the exchange rate API.
	// Optional; when empty, built-in reference rates are used.
	CurrencyAPIKey string

	// OpenAIAPIKey authenticates calls to the OpenAI API used for
	// conversational replies. Optional; when empty, replies come from
	// deterministic templates.
	OpenAIAPIKey string

	// ForecastHorizonDays is how far ahead a trip may start and still use a
	// live forecast. Defaults to 10.
	ForecastHorizonDays int

	// ForecastMaxTripDays is the longest trip that may use a live forecast.
	// Defaults to 5, the span most forecast APIs cover reliably.
	ForecastMaxTripDays int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		CurrencyAPIKey:    os.Getenv("CURRENCY_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
	}

	var err error
	if cfg.ForecastHorizonDays, err = getEnvInt("FORECAST_HORIZON_DAYS", 10); err != nil {
		return Config{}, err
	}
	if cfg.ForecastMaxTripDays, err = getEnvInt("FORECAST_MAX_TRIP_DAYS", 5); err != nil {
		return Config{}, err
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses an integer environment variable, returning fallback when
// unset and an error when set to something unparseable.
func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer, got %q", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
