package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/partytracker/party-service/internal/application/catalog"
	"github.com/partytracker/party-service/internal/config"
	"github.com/partytracker/party-service/internal/infrastructure/caching/redis"
	"github.com/partytracker/party-service/internal/infrastructure/db/postgres"
	"github.com/partytracker/party-service/internal/infrastructure/memory"
	rabbitpub "github.com/partytracker/party-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/partytracker/party-service/internal/infrastructure/seed"
	"github.com/partytracker/party-service/internal/logger"
	"github.com/partytracker/party-service/internal/transport/http/handlers"
	authmw "github.com/partytracker/party-service/internal/transport/http/middleware"
	"github.com/partytracker/party-service/internal/transport/http/router"
	zlog "github.com/rs/zerolog/log"
)

// sysClock implements catalog.Clock using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Cache     *redis.Client
	Publisher *rabbitpub.Publisher
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", "console")
		zlog.Fatal().Err(err).Msg("config load failed")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = openDB(ctx, cfg.DatabaseURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("db init failed")
		}
		defer db.Close()
	}

	app, err := NewApp(ctx, cfg, db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app init failed")
	}
	defer app.Close()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	case <-ctx.Done():
		zlog.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			zlog.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if u, err := url.Parse(dsn); err == nil {
		zlog.Info().
			Str("db_user", u.User.Username()).
			Str("db_host", u.Host).
			Str("db_db", u.Path).
			Msg("db config loaded")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// NewApp wires the record source, cache, publisher and HTTP stack. A nil db
// selects the in-memory catalog seeded from cfg.SeedFile (or the embedded
// default).
func NewApp(ctx context.Context, cfg *config.Config, db *sql.DB) (*App, error) {
	app := &App{Config: cfg, DB: db}
	checks := map[string]handlers.CheckFunc{}

	// 1) Record source
	var src catalog.RecordSource
	if db != nil {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		src = postgres.New(db)
		checks["postgres"] = db.PingContext
		zlog.Info().Msg("record source: postgres")
	} else {
		cat, err := seed.Load(cfg.SeedFile, cfg.FilterLocation)
		if err != nil {
			return nil, fmt.Errorf("load seed catalog: %w", err)
		}
		src = memory.NewSeededStore(cat)
		zlog.Info().
			Int("events", len(cat.Events)).
			Int("clubs", len(cat.Clubs)).
			Msg("record source: in-memory seed")
	}

	// 2) Cache
	var cache catalog.Cache
	if cfg.RedisURL != "" {
		c, err := redis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis init: %w", err)
		}
		app.Cache = c
		cache = c
		checks["redis"] = c.Ping
		zlog.Info().Msg("redis cache ready")
	} else {
		zlog.Warn().Msg("REDIS_URL empty: caching disabled")
	}

	// 3) Publisher
	var pub catalog.EventPublisher = catalog.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("rabbit publisher init: %w", err)
		}
		app.Publisher = p
		pub = p
		zlog.Info().Str("exchange", p.Exchange()).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	// 4) Application
	svc := catalog.New(src, sysClock{}, pub, cache, nil, catalog.Options{
		TTLDetails:     cfg.CacheTTLDetails,
		TTLList:        cfg.CacheTTLList,
		Location:       cfg.FilterLocation,
		UpcomingWindow: cfg.UpcomingWindow,
		HomeLimit:      cfg.HomeLimit,
	})

	// 5) Transport
	httpHandler := router.New(router.Handlers{
		Events: handlers.NewEventsHandler(svc),
		Clubs:  handlers.NewClubsHandler(svc),
		Home:   handlers.NewHomeHandler(svc),
		Health: handlers.NewHealthHandler(checks),
	}, authmw.NewAuth(cfg.JWTSecret, cfg.JWTIssuer), cfg)

	// 6) Server
	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
	return app, nil
}

// Close releases the broker and cache connections. The db is owned by main.
func (a *App) Close() {
	if a.Publisher != nil {
		_ = a.Publisher.Close()
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
}
