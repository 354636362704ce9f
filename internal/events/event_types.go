package events

import (
	"time"

	"github.com/spec-kit/passkit-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTemplateCreated  EventType = "template_created"
	EventTemplateUpdated  EventType = "template_updated"
	EventTemplateArchived EventType = "template_archived"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	TemplateID string      `json:"template_id"`
	ActorID    string      `json:"actor_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// TemplateCreatedPayload payload.
type TemplateCreatedPayload struct {
	Name           string                `json:"name"`
	Type           domain.PassType       `json:"type"`
	OrganizationID string                `json:"organization_id"`
	Status         domain.TemplateStatus `json:"status"`
}

// TemplateUpdatedPayload payload.
type TemplateUpdatedPayload struct {
	Name      string                `json:"name"`
	OldStatus domain.TemplateStatus `json:"old_status"`
	NewStatus domain.TemplateStatus `json:"new_status"`
}

// TemplateArchivedPayload payload.
type TemplateArchivedPayload struct {
	Name string `json:"name"`
}
