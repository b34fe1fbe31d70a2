package dto

import (
	"time"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// ScheduleCallRequest payload for scheduling a call.
type ScheduleCallRequest struct {
	LeadID        int64     `json:"lead_id"`
	ContactID     int64     `json:"contact_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Duration      int       `json:"duration"`
	Notes         *string   `json:"notes"`
}

// ScheduledCallResponse full call representation.
type ScheduledCallResponse struct {
	ID            int64             `json:"id"`
	LeadID        int64             `json:"lead_id"`
	ContactID     int64             `json:"contact_id"`
	ScheduledDate time.Time         `json:"scheduled_date"`
	Duration      int               `json:"duration"`
	Notes         *string           `json:"notes"`
	Status        domain.CallStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// UpcomingCallResponse call row enriched with display names.
type UpcomingCallResponse struct {
	ID             int64             `json:"id"`
	ScheduledDate  time.Time         `json:"scheduled_date"`
	Duration       int               `json:"duration"`
	Notes          *string           `json:"notes"`
	Status         domain.CallStatus `json:"status"`
	RestaurantName *string           `json:"restaurant_name"`
	ContactPerson  *string           `json:"contact_person"`
}
