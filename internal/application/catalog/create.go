package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/metrics"
	appCtx "github.com/partytracker/party-service/internal/pkg/context"
	zlog "github.com/rs/zerolog/log"
)

type CreateEventCmd struct {
	Title       string
	Description string
	Location    string
	DateTime    time.Time
	ImageURL    string
	Category    string
	Price       *float64
	Attendees   *int
	IsHot       bool
}

func (s *Service) CreateEvent(ctx context.Context, actor Actor, cmd CreateEventCmd) (domain.Event, error) {
	if !s.auth.CanCreate(actor) {
		return domain.Event{}, domain.ErrForbidden("not allowed to create events")
	}

	e, err := domain.NewEvent(domain.NewEventInput{
		Title:       cmd.Title,
		Description: cmd.Description,
		Location:    cmd.Location,
		DateTime:    cmd.DateTime,
		ImageURL:    cmd.ImageURL,
		Category:    cmd.Category,
		Price:       cmd.Price,
		Attendees:   cmd.Attendees,
		IsHot:       cmd.IsHot,
	}, s.clock.Now())
	if err != nil {
		return domain.Event{}, err
	}

	if err := s.src.CreateEvent(ctx, e); err != nil {
		return domain.Event{}, unavailable(err)
	}

	s.cacheDelete(ctx, cacheKeyEventSnapshot)
	metrics.RecordEventCreated()
	s.publishCreated(ctx, actor, e)

	return e, nil
}

// publishCreated is best effort. The event is already persisted.
func (s *Service) publishCreated(ctx context.Context, actor Actor, e domain.Event) {
	env := Envelope[EventCreatedPayload]{
		Version:    MessageVersion,
		Producer:   MessageProducer,
		MessageID:  e.ID,
		TraceID:    appCtx.GetRequestID(ctx),
		OccurredAt: e.CreatedAt,
		Payload: EventCreatedPayload{
			EventID:   e.ID,
			Title:     e.Title,
			Location:  e.Location,
			Category:  e.Category,
			DateTime:  e.DateTime,
			IsHot:     e.IsHot,
			ActorID:   actor.ID,
			ActorRole: actor.Role,
		},
	}
	body, err := json.Marshal(env)
	if err != nil {
		zlog.Error().Err(err).Str("event_id", e.ID).Msg("marshal domain event failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, RoutingKeyEventCreated, e.ID, body); err != nil {
		zlog.Error().
			Err(err).
			Str("rk", RoutingKeyEventCreated).
			Str("event_id", e.ID).
			Msg("publish domain event failed")
	}
}
