package catalog

import "time"

const (
	MessageVersion  = 1
	MessageProducer = "party-service"

	RoutingKeyEventCreated = "event.created"
)

// Envelope is the broker contract for every domain message the service emits.
type Envelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

type EventCreatedPayload struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Category  string    `json:"category,omitempty"`
	DateTime  time.Time `json:"date_time"`
	IsHot     bool      `json:"is_hot"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role,omitempty"`
}
