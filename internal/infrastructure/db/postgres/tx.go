package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/partytracker/party-service/internal/infrastructure/seed"
)

func (r *Repo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// UpsertCatalog writes every seed record in one transaction. Records that
// already exist are overwritten; created_at is only set on first insert.
func (r *Repo) UpsertCatalog(ctx context.Context, cat seed.Catalog, now time.Time) error {
	now = now.UTC()
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, e := range cat.Events {
			if _, err := tx.ExecContext(ctx, upsertEventSQL,
				e.ID, e.Title, e.Description, e.Location, e.DateTime, e.ImageURL, e.Category,
				nullPrice(e.Price), nullAttendees(e.Attendees), e.IsHot, now,
			); err != nil {
				return fmt.Errorf("upsert event %s: %w", e.ID, err)
			}
		}
		for _, c := range cat.Clubs {
			if _, err := tx.ExecContext(ctx, upsertClubSQL,
				c.ID, c.Name, c.Description, c.Location, c.ImageURL, c.Rating, c.UpcomingEvents, now,
			); err != nil {
				return fmt.Errorf("upsert club %s: %w", c.ID, err)
			}
		}
		return nil
	})
}
