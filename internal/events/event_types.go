package events

import "time"

// EventType enumerates supported audit event identifiers.
type EventType string

const (
	EventEntityCreated EventType = "entity_created"
	EventEntityUpdated EventType = "entity_updated"
	EventEntityDeleted EventType = "entity_deleted"
	EventLoginSuccess  EventType = "login_success"
	EventGrantChanged  EventType = "grant_changed"
)

// Event is an audit record emitted by services after a mutation commits.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload,omitempty"`
}
