package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/partytracker/party-service/internal/domain"
)

const uniqueViolation = "23505"

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo { return &Repo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (domain.Event, error) {
	var (
		e         domain.Event
		price     sql.NullFloat64
		attendees sql.NullInt64
	)
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.DateTime, &e.ImageURL, &e.Category,
		&price, &attendees, &e.IsHot, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	if price.Valid {
		p := price.Float64
		e.Price = &p
	}
	if attendees.Valid {
		a := int(attendees.Int64)
		e.Attendees = &a
	}
	return e, nil
}

func scanClub(s rowScanner) (domain.Club, error) {
	var c domain.Club
	err := s.Scan(&c.ID, &c.Name, &c.Description, &c.Location, &c.ImageURL, &c.Rating, &c.UpcomingEvents)
	return c, err
}

func nullPrice(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullAttendees(a *int) sql.NullInt64 {
	if a == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*a), Valid: true}
}

func (r *Repo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func (r *Repo) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, getEventSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, domain.ErrNotFound("event not found")
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *Repo) CreateEvent(ctx context.Context, e domain.Event) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID, e.Title, e.Description, e.Location, e.DateTime, e.ImageURL, e.Category,
		nullPrice(e.Price), nullAttendees(e.Attendees), e.IsHot, e.CreatedAt, e.UpdatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrValidationMeta("duplicate id", map[string]string{"id": "already exists"})
	}
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *Repo) ListClubs(ctx context.Context) ([]domain.Club, error) {
	rows, err := r.db.QueryContext(ctx, listClubsSQL)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	out := []domain.Club{}
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return out, nil
}

func (r *Repo) GetClub(ctx context.Context, id string) (domain.Club, error) {
	c, err := scanClub(r.db.QueryRowContext(ctx, getClubSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Club{}, domain.ErrNotFound("club not found")
	}
	if err != nil {
		return domain.Club{}, fmt.Errorf("get club: %w", err)
	}
	return c, nil
}
