package catalog

import (
	"context"
	"strings"

	"github.com/partytracker/party-service/internal/domain"
)

func (s *Service) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Event{}, domain.ErrValidationMeta("invalid id", map[string]string{"event_id": "required"})
	}

	key := cacheKeyEventDetails(id)
	var cached domain.Event
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	e, err := s.src.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, unavailable(err)
	}
	s.cacheSet(ctx, key, e, s.ttlDetails)
	return e, nil
}

func (s *Service) GetClub(ctx context.Context, id string) (domain.Club, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Club{}, domain.ErrValidationMeta("invalid id", map[string]string{"club_id": "required"})
	}

	key := cacheKeyClubDetails(id)
	var cached domain.Club
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	c, err := s.src.GetClub(ctx, id)
	if err != nil {
		return domain.Club{}, unavailable(err)
	}
	s.cacheSet(ctx, key, c, s.ttlDetails)
	return c, nil
}
