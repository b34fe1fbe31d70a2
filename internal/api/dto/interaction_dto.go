package dto

import (
	"time"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// InteractionOrderRequest optional order placed during an interaction.
type InteractionOrderRequest struct {
	TotalAmount float64 `json:"total_amount"`
	Notes       *string `json:"notes"`
}

// LogInteractionRequest payload for logging an interaction.
type LogInteractionRequest struct {
	LeadID           int64                    `json:"lead_id"`
	ContactID        int64                    `json:"contact_id"`
	IsPrimaryContact bool                     `json:"is_primary_contact"`
	Type             domain.InteractionType   `json:"type"`
	Status           domain.InteractionStatus `json:"status"`
	Notes            *string                  `json:"notes"`
	Duration         *int                     `json:"duration"`
	Rating           *int                     `json:"rating"`
	Order            *InteractionOrderRequest `json:"order"`
}

// InteractionResponse full interaction representation.
type InteractionResponse struct {
	ID        int64                    `json:"id"`
	LeadID    int64                    `json:"lead_id"`
	ContactID int64                    `json:"contact_id"`
	Type      domain.InteractionType   `json:"type"`
	Status    domain.InteractionStatus `json:"status"`
	Notes     *string                  `json:"notes"`
	Duration  *int                     `json:"duration"`
	Rating    *int                     `json:"rating"`
	OrderID   *int64                   `json:"order_id"`
	CreatedAt time.Time                `json:"created_at"`
}

// LeadInteractionCountResponse per-lead tally row.
type LeadInteractionCountResponse struct {
	LeadID           int64  `json:"lead_id"`
	RestaurantName   string `json:"restaurant_name"`
	InteractionCount int    `json:"interaction_count"`
}
