package domain

import "time"

// LeadRevenue is the per-lead revenue rollup. Aggregates are nil for
// leads with no orders (left-join semantics); they are reported, not
// suppressed.
type LeadRevenue struct {
	LeadID         int64
	RestaurantName string
	TotalRevenue   *float64
	OrderCount     int
	AvgOrderValue  *float64
	LastOrderDate  *time.Time
}

// LeadRating is the per-lead engagement rollup over interactions.
type LeadRating struct {
	LeadID              int64
	RestaurantName      string
	AvgRating           *float64
	InteractionCount    int
	LastInteractionDate *time.Time
}

// RevenueTotals sums order amounts over a period.
type RevenueTotals struct {
	TotalRevenue *float64
	OrderCount   int
}

// PotentialTotals sums estimated amounts of future potential orders.
type PotentialTotals struct {
	TotalPotentialRevenue *float64
	PotentialOrderCount   int
}

// DailyRevenue is one day's revenue within the current month.
type DailyRevenue struct {
	Date         time.Time
	DailyRevenue float64
}

// PerformanceSnapshot is the combined reporting payload. The five
// underlying queries are each consistent on their own; the snapshot
// as a whole is not point-in-time consistent across them.
type PerformanceSnapshot struct {
	RevenueByLead         []LeadRevenue
	RatingByLead          []LeadRating
	LowPerformingLeads    []LeadRevenue
	MonthlyRevenue        RevenueTotals
	PotentialRevenue      PotentialTotals
	DailyRevenueBreakdown []DailyRevenue
}
