package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the storefront application configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	// Remote collaborators
	ProductAPIURL string
	AuthAPIURL    string
	HTTPTimeout   time.Duration

	// Browsing defaults
	PageSize       int
	MaxPageSize    int
	SearchDebounce time.Duration

	// Observability
	MetricsAddr    string
	JaegerEndpoint string
}

// Load loads the configuration from environment variables
func Load() *Config {
	return &Config{
		ServiceName:    "storefront",
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ProductAPIURL:  getEnv("PRODUCT_API_URL", "https://dummyjson.com"),
		AuthAPIURL:     getEnv("AUTH_API_URL", "https://dummyjson.com/auth"),
		HTTPTimeout:    getDuration("HTTP_TIMEOUT", 30*time.Second),
		PageSize:       getInt("PAGE_SIZE", 10),
		MaxPageSize:    getInt("MAX_PAGE_SIZE", 100),
		SearchDebounce: getDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		MetricsAddr:    getEnv("METRICS_ADDR", ""),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
	}
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
