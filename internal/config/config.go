package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Cloudinary
	CloudinaryAPIBaseURL string
	CloudinaryCloudName  string
	CloudinaryAPIKey     string
	CloudinaryAPISecret  string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string

	// Database
	DatabaseURL string

	// Server
	Port           string
	Environment    string
	BaseURL        string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// .env is optional; deployments set real env vars
	_ = godotenv.Load()

	cfg := &Config{
		CloudinaryAPIBaseURL: getEnv("CLOUDINARY_API_BASE_URL", "https://api.cloudinary.com/v1_1/"),
		CloudinaryCloudName:  getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:     getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:  getEnv("CLOUDINARY_API_SECRET", ""),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.CloudinaryCloudName == "" {
		return fmt.Errorf("CLOUDINARY_CLOUD_NAME is required")
	}
	if c.CloudinaryAPIKey == "" {
		return fmt.Errorf("CLOUDINARY_API_KEY is required")
	}
	if c.CloudinaryAPISecret == "" {
		return fmt.Errorf("CLOUDINARY_API_SECRET is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
