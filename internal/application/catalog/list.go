package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/partytracker/party-service/internal/application/listing"
	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/metrics"
	zlog "github.com/rs/zerolog/log"
)

type EventPage struct {
	Items  []domain.Event
	Filter listing.EventFilter
	Query  listing.Query // canonical form of the applied filter set
}

type ClubPage struct {
	Items  []domain.Club
	Filter listing.ClubFilter
	Query  listing.Query
}

// ListEvents hydrates a listing view from q, loads the event snapshot and
// returns the filtered, sorted items with the canonical query.
func (s *Service) ListEvents(ctx context.Context, q listing.Query) (EventPage, error) {
	nav := listing.NewMemoryNavigator(q.Encode())
	v := listing.NewView(nav, listing.EventCodec, listing.EventApply(s.eval))
	defer v.Close()

	if err := v.Load(ctx, s.eventSnapshot); err != nil {
		return EventPage{}, s.loadErr(domain.RecordEvents, err)
	}

	items := v.Items()
	metrics.ObserveListing(string(domain.RecordEvents), len(items))
	return EventPage{Items: items, Filter: v.Filter(), Query: nav.ReadQuery()}, nil
}

func (s *Service) ListClubs(ctx context.Context, q listing.Query) (ClubPage, error) {
	nav := listing.NewMemoryNavigator(q.Encode())
	v := listing.NewView(nav, listing.ClubCodec, listing.ClubApply(s.eval))
	defer v.Close()

	if err := v.Load(ctx, s.clubSnapshot); err != nil {
		return ClubPage{}, s.loadErr(domain.RecordClubs, err)
	}

	items := v.Items()
	metrics.ObserveListing(string(domain.RecordClubs), len(items))
	return ClubPage{Items: items, Filter: v.Filter(), Query: nav.ReadQuery()}, nil
}

func (s *Service) loadErr(rt domain.RecordType, err error) error {
	if !errors.Is(err, listing.ErrFetchFailed) {
		return err
	}
	metrics.RecordFetchFailure(string(rt))
	zlog.Error().Err(err).Str("record_type", string(rt)).Msg("record source read failed")
	return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
}

func (s *Service) eventSnapshot(ctx context.Context) ([]domain.Event, error) {
	var cached []domain.Event
	if s.cacheGet(ctx, cacheKeyEventSnapshot, &cached) {
		return cached, nil
	}
	events, err := s.src.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyEventSnapshot, events, s.ttlList)
	return events, nil
}

func (s *Service) clubSnapshot(ctx context.Context) ([]domain.Club, error) {
	var cached []domain.Club
	if s.cacheGet(ctx, cacheKeyClubSnapshot, &cached) {
		return cached, nil
	}
	clubs, err := s.src.ListClubs(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyClubSnapshot, clubs, s.ttlList)
	return clubs, nil
}

func fetchFailed(err error) error {
	return fmt.Errorf("%w: %w", listing.ErrFetchFailed, err)
}
