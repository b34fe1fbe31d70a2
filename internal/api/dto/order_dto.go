package dto

import (
	"time"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// OrderRequest payload for creating an order.
type OrderRequest struct {
	LeadID      int64   `json:"lead_id"`
	TotalAmount float64 `json:"total_amount"`
	Notes       *string `json:"notes"`
}

// OrderResponse full order representation.
type OrderResponse struct {
	ID          int64              `json:"id"`
	LeadID      int64              `json:"lead_id"`
	OrderDate   time.Time          `json:"order_date"`
	TotalAmount float64            `json:"total_amount"`
	Status      domain.OrderStatus `json:"status"`
	Notes       *string            `json:"notes"`
	CreatedAt   time.Time          `json:"created_at"`
}

// RecentOrderResponse order row for the dashboard widget.
type RecentOrderResponse struct {
	ID             int64              `json:"id"`
	OrderDate      time.Time          `json:"order_date"`
	TotalAmount    float64            `json:"total_amount"`
	Status         domain.OrderStatus `json:"status"`
	RestaurantName string             `json:"restaurant_name"`
}

// PotentialOrderRequest payload for creating a forecast entry.
type PotentialOrderRequest struct {
	LeadID          int64     `json:"lead_id"`
	ExpectedDate    time.Time `json:"expected_date"`
	EstimatedAmount *float64  `json:"estimated_amount"`
	Probability     *int      `json:"probability"`
	Notes           *string   `json:"notes"`
}

// PotentialOrderResponse forecast row for the dashboard widget.
type PotentialOrderResponse struct {
	ID              int64     `json:"id"`
	ExpectedDate    time.Time `json:"expected_date"`
	EstimatedAmount *float64  `json:"estimated_amount"`
	Probability     *int      `json:"probability"`
	RestaurantName  string    `json:"restaurant_name"`
}
