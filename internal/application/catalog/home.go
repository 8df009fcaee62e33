package catalog

import (
	"context"

	"github.com/partytracker/party-service/internal/application/listing"
	"github.com/partytracker/party-service/internal/domain"
)

type HomePage struct {
	Upcoming []domain.Event
	Trending []domain.Event
	Featured []domain.Club
}

func (s *Service) Home(ctx context.Context) (HomePage, error) {
	events, err := s.eventSnapshot(ctx)
	if err != nil {
		return HomePage{}, s.loadErr(domain.RecordEvents, fetchFailed(err))
	}
	clubs, err := s.clubSnapshot(ctx)
	if err != nil {
		return HomePage{}, s.loadErr(domain.RecordClubs, fetchFailed(err))
	}

	now := s.clock.Now()
	return HomePage{
		Upcoming: listing.Upcoming(events, now, s.upcomingWindow, s.homeLimit),
		Trending: listing.Trending(events, s.homeLimit),
		Featured: listing.Featured(clubs, s.homeLimit),
	}, nil
}
