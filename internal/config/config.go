package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultAPIBase is where the CLI points when ISDJOBS_API_BASE is unset,
// matching a locally running cmd/api.
const DefaultAPIBase = "http://localhost:8080"

type Config struct {
	HTTPPort    string
	PostgresDSN string

	// APIBase is the client-side base URL for /search and /bookmarks.
	APIBase string

	// Upstream Workday fetch tuning.
	FetchTimeout    time.Duration
	FetchRetries    int
	FetchBaseDelay  time.Duration
	FetchMaxDelay   time.Duration
	FetchRatePerSec float64
	SearchWorkers   int
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		PostgresDSN:     getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=isdjobs port=5432 sslmode=disable"),
		APIBase:         getEnv("ISDJOBS_API_BASE", DefaultAPIBase),
		FetchTimeout:    getDuration("FETCH_TIMEOUT", 25*time.Second),
		FetchRetries:    getInt("FETCH_RETRIES", 3),
		FetchBaseDelay:  getDuration("FETCH_BASE_DELAY", 1*time.Second),
		FetchMaxDelay:   getDuration("FETCH_MAX_DELAY", 30*time.Second),
		FetchRatePerSec: getFloat("FETCH_RATE_PER_SEC", 4),
		SearchWorkers:   getInt("SEARCH_WORKERS", 4),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
