package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Upstream   UpstreamConfig
	JWT        JWTConfig
	CORS       CORSConfig
	Statistics StatisticsConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// UpstreamConfig describes the inventory/payroll REST backend.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration

	// Token is a static bearer token. When empty and ClientID is set the
	// client credentials grant is used instead.
	Token        string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// StatisticsConfig controls the client-side statistics fallback.
type StatisticsConfig struct {
	FallbackPerPage int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	} else if err != nil {
		slog.Info("No .env file found, using process environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Upstream configuration
	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL:      strings.TrimRight(getEnv("UPSTREAM_BASE_URL", ""), "/"),
		Timeout:      timeout,
		Token:        getEnv("UPSTREAM_TOKEN", ""),
		ClientID:     getEnv("UPSTREAM_CLIENT_ID", ""),
		ClientSecret: getEnv("UPSTREAM_CLIENT_SECRET", ""),
		TokenURL:     getEnv("UPSTREAM_TOKEN_URL", ""),
		Scopes:       getEnvSlice("UPSTREAM_SCOPES"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	origins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"http://localhost:8081", "http://localhost:19006"}
	}
	config.CORS = CORSConfig{AllowedOrigins: origins}

	fallbackPerPage, err := strconv.Atoi(getEnv("STATISTICS_FALLBACK_PER_PAGE", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATISTICS_FALLBACK_PER_PAGE: %w", err)
	}
	config.Statistics = StatisticsConfig{FallbackPerPage: fallbackPerPage}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an absolute URL")
	}
	if c.Upstream.ClientID != "" {
		if c.Upstream.ClientSecret == "" {
			return fmt.Errorf("UPSTREAM_CLIENT_SECRET is required when UPSTREAM_CLIENT_ID is set")
		}
		if c.Upstream.TokenURL == "" {
			return fmt.Errorf("UPSTREAM_TOKEN_URL is required when UPSTREAM_CLIENT_ID is set")
		}
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Statistics.FallbackPerPage <= 0 {
		return fmt.Errorf("STATISTICS_FALLBACK_PER_PAGE must be positive")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
