package events

import (
	"time"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadCreated       EventType = "lead_created"
	EventOrderCreated      EventType = "order_created"
	EventOrderCompleted    EventType = "order_completed"
	EventCallScheduled     EventType = "call_scheduled"
	EventCallCompleted     EventType = "call_completed"
	EventInteractionLogged EventType = "interaction_logged"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	LeadID    int64       `json:"lead_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeadCreatedPayload payload.
type LeadCreatedPayload struct {
	RestaurantName string            `json:"restaurant_name"`
	Location       string            `json:"location"`
	Status         domain.LeadStatus `json:"status"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderID     int64   `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

// OrderCompletedPayload payload.
type OrderCompletedPayload struct {
	OrderID int64 `json:"order_id"`
}

// CallScheduledPayload payload.
type CallScheduledPayload struct {
	CallID        int64     `json:"call_id"`
	ContactID     int64     `json:"contact_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

// CallCompletedPayload payload.
type CallCompletedPayload struct {
	CallID        int64 `json:"call_id"`
	InteractionID int64 `json:"interaction_id"`
}

// InteractionLoggedPayload payload.
type InteractionLoggedPayload struct {
	InteractionID int64                  `json:"interaction_id"`
	Type          domain.InteractionType `json:"type"`
	OrderID       *int64                 `json:"order_id,omitempty"`
}
