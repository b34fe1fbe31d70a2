package dto

import "time"

// LeadRevenueResponse per-lead revenue rollup row. Aggregates stay
// null for leads without orders.
type LeadRevenueResponse struct {
	LeadID         int64      `json:"lead_id"`
	RestaurantName string     `json:"restaurant_name"`
	TotalRevenue   *float64   `json:"total_revenue"`
	OrderCount     int        `json:"order_count"`
	AvgOrderValue  *float64   `json:"avg_order_value"`
	LastOrderDate  *time.Time `json:"last_order_date"`
}

// LeadRatingResponse per-lead engagement rollup row.
type LeadRatingResponse struct {
	LeadID              int64      `json:"lead_id"`
	RestaurantName      string     `json:"restaurant_name"`
	AvgRating           *float64   `json:"avg_rating"`
	InteractionCount    int        `json:"interaction_count"`
	LastInteractionDate *time.Time `json:"last_interaction_date"`
}

// RevenueTotalsResponse monthly totals.
type RevenueTotalsResponse struct {
	TotalRevenue *float64 `json:"total_revenue"`
	OrderCount   int      `json:"order_count"`
}

// PotentialTotalsResponse pipeline totals.
type PotentialTotalsResponse struct {
	TotalPotentialRevenue *float64 `json:"total_potential_revenue"`
	PotentialOrderCount   int      `json:"potential_order_count"`
}

// DailyRevenueResponse one day of the current month.
type DailyRevenueResponse struct {
	Date         time.Time `json:"date"`
	DailyRevenue float64   `json:"daily_revenue"`
}

// PerformanceResponse combined reporting payload.
type PerformanceResponse struct {
	RevenueByLead         []LeadRevenueResponse   `json:"revenue_by_lead"`
	RatingByLead          []LeadRatingResponse    `json:"rating_by_lead"`
	LowPerformingLeads    []LeadRevenueResponse   `json:"low_performing_leads"`
	MonthlyRevenue        RevenueTotalsResponse   `json:"monthly_revenue"`
	PotentialRevenue      PotentialTotalsResponse `json:"potential_revenue"`
	DailyRevenueBreakdown []DailyRevenueResponse  `json:"daily_revenue_breakdown"`
}
