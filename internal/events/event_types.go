package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventIdentityLookupFault EventType = "identity_lookup_fault"
	EventOptionalAuthSkipped EventType = "optional_auth_skipped"
	EventAuthRejected        EventType = "auth_rejected"
)

// Event represents an authentication event emitted by the auth layer.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// IdentityLookupFaultPayload payload.
type IdentityLookupFaultPayload struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// AuthOutcomePayload payload for rejected or skipped authentications.
type AuthOutcomePayload struct {
	Code   string `json:"code"`
	Path   string `json:"path"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// New builds an event stamped with a fresh ID and the current time.
func New(eventType EventType, requestID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
