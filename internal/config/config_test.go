package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so a developer .env or shell
// environment cannot leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "HTTP_ADDR", "DATABASE_URL", "SEED_FILE", "JWT_SECRET", "JWT_ISSUER",
		"RABBIT_URL", "RABBIT_EXCHANGE", "REDIS_URL", "CACHE_TTL_DETAILS", "CACHE_TTL_LIST",
		"CORS_ALLOWED_ORIGINS", "RL_ENABLED", "RL_IP_LIMIT", "RL_IP_WINDOW", "FILTER_TZ", "UPCOMING_WINDOW", "HOME_LIMIT",
		"LOG_LEVEL", "LOG_FORMAT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "party.events", cfg.RabbitExchange)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTLDetails)
	assert.Equal(t, 15*time.Second, cfg.CacheTTLList)
	assert.True(t, cfg.RLEnabled)
	assert.Equal(t, 100, cfg.RLLimit)
	assert.Equal(t, time.Local, cfg.FilterLocation)
	assert.Equal(t, 72*time.Hour, cfg.UpcomingWindow)
	assert.Equal(t, 4, cfg.HomeLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/party?sslmode=disable")
	t.Setenv("RL_ENABLED", "false")
	t.Setenv("CACHE_TTL_LIST", "30s")
	t.Setenv("FILTER_TZ", "Europe/Berlin")
	t.Setenv("HOME_LIMIT", "6")
	t.Setenv("UPCOMING_WINDOW", "48h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, ,https://party.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	assert.False(t, cfg.RLEnabled)
	assert.Equal(t, 30*time.Second, cfg.CacheTTLList)
	assert.Equal(t, "Europe/Berlin", cfg.FilterLocation.String())
	assert.Equal(t, 6, cfg.HomeLimit)
	assert.Equal(t, 48*time.Hour, cfg.UpcomingWindow)
	assert.Equal(t, []string{"http://localhost:5173", "https://party.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing jwt secret": {},
		"prod without db":    {"JWT_SECRET": "x", "APP_ENV": "prod"},
		"bad timezone":       {"JWT_SECRET": "x", "FILTER_TZ": "Mars/Olympus"},
		"non-positive home":  {"JWT_SECRET": "x", "HOME_LIMIT": "0"},
		"rate limit zero":    {"JWT_SECRET": "x", "RL_IP_LIMIT": "-1"},
		"bad duration":       {"JWT_SECRET": "x", "UPCOMING_WINDOW": "soon"},
		"bad boolean":        {"JWT_SECRET": "x", "RL_ENABLED": "maybe"},
		"bad integer":        {"JWT_SECRET": "x", "HOME_LIMIT": "four"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL_LIST", "fast")
	t.Setenv("RL_IP_LIMIT", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_TTL_LIST")
	assert.Contains(t, err.Error(), "RL_IP_LIMIT")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
