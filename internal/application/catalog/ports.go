package catalog

import (
	"context"
	"time"

	"github.com/partytracker/party-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// RecordSource is the authoritative store for events and clubs. List reads
// return the full collection; filtering and ordering happen in the service.
type RecordSource interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListClubs(ctx context.Context) ([]domain.Club, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	GetClub(ctx context.Context, id string) (domain.Club, error)
	CreateEvent(ctx context.Context, e domain.Event) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// EventPublisher sends a JSON body to the broker. messageID must be stable
// for a given domain event.
type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}

// Actor is the authenticated caller as resolved by the transport layer.
type Actor struct {
	ID   string
	Role string
}

type Authorizer interface {
	CanCreate(a Actor) bool
}
