package domain

import "time"

// OrderStatus enumerates fulfillment states for an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

// RecentOrder is an order enriched with the lead's display name for
// the dashboard's recent-orders widget.
type RecentOrder struct {
	ID             int64
	OrderDate      time.Time
	TotalAmount    float64
	Status         OrderStatus
	RestaurantName string
}

// Order is a placed order belonging to exactly one lead. Amounts are
// carried as float64 on the read side; the column itself is decimal.
type Order struct {
	ID          int64
	LeadID      int64
	OrderDate   time.Time
	TotalAmount float64
	Status      OrderStatus
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
