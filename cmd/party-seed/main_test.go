package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noDB(t *testing.T) opener {
	return func(string) (*sql.DB, error) {
		t.Fatal("database must not be opened")
		return nil, nil
	}
}

func TestRun_DryRun(t *testing.T) {
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"--dry-run", "--tz", "UTC"}, &out, &errOut, noDB(t))

	assert.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "catalog ok: 8 events, 6 clubs\n", out.String())
}

func TestRun_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	var out, errOut bytes.Buffer

	code := run(context.Background(), nil, &out, &errOut, noDB(t))

	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "missing --database-url")
}

func TestRun_BadFlags(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, 2, run(context.Background(), []string{"--nope"}, &out, &errOut, noDB(t)))
	assert.Equal(t, 2, run(context.Background(), []string{"--tz", "Mars/Olympus"}, &out, &errOut, noDB(t)))
	assert.Equal(t, 1, run(context.Background(), []string{"-f", "/does/not/exist.yaml"}, &out, &errOut, noDB(t)))
}

func TestRun_Seeds(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS events").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	for i := 0; i < 8; i++ {
		mock.ExpectExec("INSERT INTO events").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for i := 0; i < 6; i++ {
		mock.ExpectExec("INSERT INTO clubs").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
	mock.ExpectClose()

	var gotDSN string
	open := func(dsn string) (*sql.DB, error) {
		gotDSN = dsn
		return db, nil
	}

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--database-url", "postgres://seed@localhost/party", "--tz", "UTC"}, &out, &errOut, open)

	assert.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "postgres://seed@localhost/party", gotDSN)
	assert.Equal(t, "seeded 8 events, 6 clubs\n", out.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_SkipSchemaAndPingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	var out, errOut bytes.Buffer
	code := run(context.Background(),
		[]string{"--database-url", "postgres://x", "--ensure-schema=false"},
		&out, &errOut,
		func(string) (*sql.DB, error) { return db, nil },
	)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "db ping")
	assert.NoError(t, mock.ExpectationsWereMet())
}
