package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr string

	// Record source: Postgres when set, otherwise the seeded in-memory catalog.
	DatabaseURL string
	SeedFile    string

	JWTSecret string
	JWTIssuer string

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Redis & Caching (empty RedisURL disables the cache)
	RedisURL        string
	CacheTTLDetails time.Duration
	CacheTTLList    time.Duration

	// Browser origins allowed by CORS; empty disables the middleware.
	CORSAllowedOrigins []string

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	// Listing
	FilterLocation *time.Location // zone used to take the calendar day of an event
	UpcomingWindow time.Duration
	HomeLimit      int

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

// Load reads the process environment after merging an optional .env file.
// Malformed values are reported together instead of falling back silently.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var e env
	cfg := &Config{
		AppEnv:      e.str("APP_ENV", "dev"),
		HTTPAddr:    e.str("HTTP_ADDR", ":8080"),
		DatabaseURL: e.str("DATABASE_URL", ""),
		SeedFile:    e.str("SEED_FILE", ""),

		JWTSecret: e.str("JWT_SECRET", ""),
		JWTIssuer: e.str("JWT_ISSUER", ""),

		RabbitURL:      e.str("RABBIT_URL", ""),
		RabbitExchange: e.str("RABBIT_EXCHANGE", "party.events"),

		RedisURL:        e.str("REDIS_URL", ""),
		CacheTTLDetails: e.duration("CACHE_TTL_DETAILS", 5*time.Minute),
		CacheTTLList:    e.duration("CACHE_TTL_LIST", 15*time.Second),

		CORSAllowedOrigins: e.list("CORS_ALLOWED_ORIGINS"),

		// 100 reqs / 1 min per IP
		RLEnabled: e.boolean("RL_ENABLED", true),
		RLLimit:   e.integer("RL_IP_LIMIT", 100),
		RLWindow:  e.duration("RL_IP_WINDOW", time.Minute),

		FilterLocation: e.location("FILTER_TZ", "Local"),
		UpcomingWindow: e.duration("UPCOMING_WINDOW", 72*time.Hour),
		HomeLimit:      e.integer("HOME_LIMIT", 4),

		LogLevel:  e.str("LOG_LEVEL", "info"),
		LogFormat: e.str("LOG_FORMAT", "console"),

		HTTPReadTimeout:  e.duration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: e.duration("HTTP_WRITE_TIMEOUT", 20*time.Second),
		HTTPIdleTimeout:  e.duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
	}

	if cfg.JWTSecret == "" {
		e.fail(errors.New("missing JWT_SECRET"))
	}
	if !cfg.IsDev() && cfg.DatabaseURL == "" {
		e.fail(errors.New("missing DATABASE_URL (required when APP_ENV != dev)"))
	}
	if cfg.HomeLimit <= 0 {
		e.fail(errors.New("HOME_LIMIT must be > 0"))
	}
	if cfg.UpcomingWindow <= 0 {
		e.fail(errors.New("UPCOMING_WINDOW must be > 0"))
	}
	if cfg.RLEnabled && cfg.RLLimit <= 0 {
		e.fail(errors.New("RL_IP_LIMIT must be > 0 when RL_ENABLED"))
	}

	if err := errors.Join(e.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// env reads trimmed variables and collects parse failures.
type env struct {
	errs []error
}

func (e *env) fail(err error) { e.errs = append(e.errs, err) }

func (e *env) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func (e *env) str(key, def string) string {
	if v, ok := e.lookup(key); ok {
		return v
	}
	return def
}

// list splits a comma separated variable, dropping blank entries.
func (e *env) list(key string) []string {
	v, ok := e.lookup(key)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (e *env) boolean(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(fmt.Errorf("invalid %s %q: want a boolean", key, v))
		return def
	}
	return b
}

func (e *env) integer(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		e.fail(fmt.Errorf("invalid %s %q: want an integer", key, v))
		return def
	}
	return i
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(fmt.Errorf("invalid %s %q: want a duration like 30s", key, v))
		return def
	}
	return d
}

func (e *env) location(key, def string) *time.Location {
	name := e.str(key, def)
	loc, err := time.LoadLocation(name)
	if err != nil {
		e.fail(fmt.Errorf("invalid %s %q: %w", key, name, err))
		return time.Local
	}
	return loc
}
