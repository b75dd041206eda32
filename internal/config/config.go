// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is built once at startup
// and shared read-only with the components that need it.
type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string

	GeoapifyAPIKey  string
	GeoapifyBaseURL string

	DatabaseURL    string
	RedisURL       string
	PlacesCacheTTL time.Duration

	SearchRadiusKm float64
	SearchLimit    int

	LogLevel  string
	LogFormat string
}

// Load reads a .env file when one exists, then builds Config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds Config from the current environment with defaults.
func FromEnv() *Config {
	return &Config{
		Port:            Get("PORT", "8080"),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     Get("GEMINI_MODEL", "gemini-2.5-flash"),
		GeoapifyAPIKey:  strings.TrimSpace(os.Getenv("GEOAPIFY_API_KEY")),
		GeoapifyBaseURL: Get("GEOAPIFY_BASE_URL", "https://api.geoapify.com"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:        strings.TrimSpace(os.Getenv("REDIS_URL")),
		PlacesCacheTTL:  time.Duration(getInt("PLACES_CACHE_TTL_SECONDS", 86400)) * time.Second,
		SearchRadiusKm:  getFloat("SEARCH_RADIUS_KM", 30),
		SearchLimit:     getInt("SEARCH_LIMIT", 10),
		LogLevel:        Get("LOG_LEVEL", "info"),
		LogFormat:       Get("LOG_FORMAT", "text"),
	}
}

// PlacesEnabled reports whether live places lookup is configured.
func (c *Config) PlacesEnabled() bool {
	return c.GeoapifyAPIKey != ""
}

// CacheEnabled reports whether a places cache backend is configured.
// Redis takes precedence over Postgres when both are set.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" || c.DatabaseURL != ""
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	var errs []error

	if c.GeminiAPIKey == "" {
		errs = append(errs, errors.New("GEMINI_API_KEY is required"))
	}
	if c.GeminiModel == "" {
		errs = append(errs, errors.New("GEMINI_MODEL must be non-empty"))
	}
	if c.SearchRadiusKm <= 0 {
		errs = append(errs, errors.New("SEARCH_RADIUS_KM must be positive"))
	}
	if c.SearchLimit <= 0 {
		errs = append(errs, errors.New("SEARCH_LIMIT must be positive"))
	}
	if c.PlacesCacheTTL <= 0 {
		errs = append(errs, errors.New("PLACES_CACHE_TTL_SECONDS must be positive"))
	}

	return errors.Join(errs...)
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer setting, using default", "key", key, "value", v, "default", fallback)
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("invalid number setting, using default", "key", key, "value", v, "default", fallback)
	}
	return fallback
}
