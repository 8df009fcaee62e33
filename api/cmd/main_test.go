package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partytracker/party-service/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		HTTPAddr:       ":8081",
		JWTSecret:      "test-secret",
		JWTIssuer:      "test-issuer",
		FilterLocation: time.UTC,
		HomeLimit:      4,
	}
}

func TestNewApp_InMemory(t *testing.T) {
	cfg := baseConfig()

	app, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, cfg.HTTPAddr, app.Server.Addr)
	require.NotNil(t, app.Server.Handler, "HTTP Handler should be initialized")
	assert.Nil(t, app.Cache)
	assert.Nil(t, app.Publisher)

	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/clubs/club1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewApp_CustomSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
events:
  - id: solo
    title: Solo Show
    location: Garage
    date_time: "2025-10-01T20:00:00"
clubs: []
`), 0o600))

	cfg := baseConfig()
	cfg.SeedFile = path

	app, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/events/solo", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewApp_BadSeedFile(t *testing.T) {
	cfg := baseConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewApp(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewApp_PostgresAndRedis(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS events").WillReturnResult(sqlmock.NewResult(0, 0))

	mr := miniredis.RunT(t)

	cfg := baseConfig()
	cfg.RedisURL = "redis://" + mr.Addr()

	app, err := NewApp(context.Background(), cfg, db)
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Cache)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectPing()
	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"redis":"ok"`)
	assert.Contains(t, rr.Body.String(), `"postgres":"ok"`)
}

func TestNewApp_RedisUnreachable(t *testing.T) {
	cfg := baseConfig()
	cfg.RedisURL = "redis://127.0.0.1:6399" // assume nothing listens here

	_, err := NewApp(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestSysClock_Now(t *testing.T) {
	clock := sysClock{}
	now := clock.Now()

	assert.Equal(t, "UTC", now.Location().String())
}
