package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Environment   string
	Port          string
	JWTSecret     string
	JWTExpiration int

	// Vision Configuration
	VisionAPIURL string

	// Rate Limiting Configuration
	RateLimitRequests int
	RateLimitWindow   int
	AuthRateLimit     string

	// Request Limits
	MaxRequestSize int64

	// CORS Configuration
	AllowedOrigins  []string
	AllowAllOrigins bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "agrilink-dev-secret-change-in-production"),
		JWTExpiration: getEnvAsInt("JWT_EXPIRATION", 24*60*60), // 24 hours in seconds

		VisionAPIURL: getEnv("VISION_API_URL", ""),

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 10000),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60), // seconds
		AuthRateLimit:     getEnv("AUTH_RATE_LIMIT", "60-M"),

		MaxRequestSize: getEnvAsInt64("MAX_REQUEST_SIZE", 10*1024*1024),

		AllowedOrigins:  getEnvAsStringSlice("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		AllowAllOrigins: getEnvAsBool("ALLOW_ALL_ORIGINS", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	if c.JWTExpiration <= 0 {
		return fmt.Errorf("JWT expiration must be positive")
	}

	return nil
}
