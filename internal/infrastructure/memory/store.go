package memory

import (
	"context"
	"sync"

	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/infrastructure/seed"
)

// Store is an in-process RecordSource. List reads return records in
// insertion order.
type Store struct {
	mu sync.RWMutex

	events   map[string]domain.Event
	eventIDs []string
	clubs    map[string]domain.Club
	clubIDs  []string
}

func NewStore() *Store {
	return &Store{
		events: make(map[string]domain.Event),
		clubs:  make(map[string]domain.Club),
	}
}

// NewSeededStore returns a store holding every record of cat.
func NewSeededStore(cat seed.Catalog) *Store {
	s := NewStore()
	s.Seed(cat)
	return s
}

// Seed upserts the catalog. Existing ids keep their position.
func (s *Store) Seed(cat seed.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range cat.Events {
		s.putEvent(e)
	}
	for _, c := range cat.Clubs {
		if _, ok := s.clubs[c.ID]; !ok {
			s.clubIDs = append(s.clubIDs, c.ID)
		}
		s.clubs[c.ID] = c
	}
}

func (s *Store) putEvent(e domain.Event) {
	if _, ok := s.events[e.ID]; !ok {
		s.eventIDs = append(s.eventIDs, e.ID)
	}
	s.events[e.ID] = e
}

func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, 0, len(s.eventIDs))
	for _, id := range s.eventIDs {
		out = append(out, s.events[id])
	}
	return out, nil
}

func (s *Store) ListClubs(ctx context.Context) ([]domain.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Club, 0, len(s.clubIDs))
	for _, id := range s.clubIDs {
		out = append(out, s.clubs[id])
	}
	return out, nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return domain.Event{}, domain.ErrNotFound("event not found")
	}
	return e, nil
}

func (s *Store) GetClub(ctx context.Context, id string) (domain.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clubs[id]
	if !ok {
		return domain.Club{}, domain.ErrNotFound("club not found")
	}
	return c, nil
}

func (s *Store) CreateEvent(ctx context.Context, e domain.Event) error {
	if e.ID == "" {
		return domain.ErrValidation("event id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[e.ID]; exists {
		return domain.ErrValidationMeta("duplicate id", map[string]string{"id": "already exists"})
	}
	s.putEvent(e)
	return nil
}
