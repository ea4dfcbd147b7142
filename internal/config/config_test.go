package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.com/api/")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "https://api.example.com/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 10000, cfg.Statistics.FallbackPerPage)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("UPSTREAM_SCOPES", "inventory, payroll ,")
	t.Setenv("STATISTICS_FALLBACK_PER_PAGE", "500")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, []string{"inventory", "payroll"}, cfg.Upstream.Scopes)
	assert.Equal(t, 500, cfg.Statistics.FallbackPerPage)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"APP_PORT":                     "eighty",
		"UPSTREAM_TIMEOUT":             "soon",
		"STATISTICS_FALLBACK_PER_PAGE": "lots",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Upstream:   UpstreamConfig{BaseURL: "http://localhost:8000/api"},
			JWT:        JWTConfig{Secret: "s"},
			Statistics: StatisticsConfig{FallbackPerPage: 10000},
		}
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.Upstream.BaseURL = ""
	assert.ErrorContains(t, c.Validate(), "UPSTREAM_BASE_URL")

	c = valid()
	c.Upstream.BaseURL = "/relative"
	assert.ErrorContains(t, c.Validate(), "absolute")

	c = valid()
	c.JWT.Secret = ""
	assert.ErrorContains(t, c.Validate(), "JWT_SECRET_KEY")

	c = valid()
	c.Upstream.ClientID = "mobile"
	assert.ErrorContains(t, c.Validate(), "UPSTREAM_CLIENT_SECRET")

	c.Upstream.ClientSecret = "secret"
	assert.ErrorContains(t, c.Validate(), "UPSTREAM_TOKEN_URL")

	c.Upstream.TokenURL = "http://localhost:8000/oauth/token"
	assert.NoError(t, c.Validate())
}
