// Command party-seed loads a seed catalog into Postgres. Records are upserted
// by id, so re-running it is safe.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	flag "github.com/spf13/pflag"

	"github.com/partytracker/party-service/internal/infrastructure/db/postgres"
	"github.com/partytracker/party-service/internal/infrastructure/seed"
)

var errNoDatabaseURL = errors.New("missing --database-url (or DATABASE_URL)")

type opener func(dsn string) (*sql.DB, error)

func openPostgres(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, openPostgres)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, out, errOut io.Writer, open opener) int {
	flagSet := flag.NewFlagSet("party-seed", flag.ContinueOnError)
	flagSet.SetOutput(errOut)

	dsn := flagSet.String("database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")
	seedFile := flagSet.StringP("seed-file", "f", "", "YAML seed catalog (default: embedded catalog)")
	tz := flagSet.String("tz", "Local", "zone for date_time values without an offset")
	ensureSchema := flagSet.Bool("ensure-schema", true, "create tables before loading")
	dryRun := flagSet.Bool("dry-run", false, "parse and validate the catalog without writing")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		fmt.Fprintln(errOut, "error: invalid --tz:", err)
		return 2
	}

	cat, err := seed.Load(*seedFile, loc)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if *dryRun {
		fmt.Fprintf(out, "catalog ok: %d events, %d clubs\n", len(cat.Events), len(cat.Clubs))
		return 0
	}

	if *dsn == "" {
		fmt.Fprintln(errOut, "error:", errNoDatabaseURL)
		return 2
	}

	if err := load(ctx, open, *dsn, cat, *ensureSchema); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	fmt.Fprintf(out, "seeded %d events, %d clubs\n", len(cat.Events), len(cat.Clubs))
	return 0
}

func load(ctx context.Context, open opener, dsn string, cat seed.Catalog, ensureSchema bool) error {
	db, err := open(dsn)
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if ensureSchema {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
	}
	return postgres.New(db).UpsertCatalog(ctx, cat, time.Now().UTC())
}
