package dto

import (
	"time"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// LeadRequest payload for creating or updating a lead.
type LeadRequest struct {
	RestaurantName string            `json:"restaurant_name"`
	Location       string            `json:"location"`
	Type           string            `json:"type"`
	Status         domain.LeadStatus `json:"status"`
	ContactPerson  *string           `json:"contact_person"`
	ContactEmail   *string           `json:"contact_email"`
	ContactPhone   *string           `json:"contact_phone"`
	Notes          *string           `json:"notes"`
}

// LeadResponse full lead representation.
type LeadResponse struct {
	ID             int64             `json:"id"`
	RestaurantName string            `json:"restaurant_name"`
	Location       string            `json:"location"`
	Type           string            `json:"type"`
	Status         domain.LeadStatus `json:"status"`
	ContactPerson  *string           `json:"contact_person"`
	ContactEmail   *string           `json:"contact_email"`
	ContactPhone   *string           `json:"contact_phone"`
	Notes          *string           `json:"notes"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
