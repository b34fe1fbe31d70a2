package domain

import "time"

// UpcomingPotentialOrder is a potential order enriched with the
// lead's display name for the dashboard's pipeline widget.
type UpcomingPotentialOrder struct {
	ID              int64
	ExpectedDate    time.Time
	EstimatedAmount *float64
	Probability     *int
	RestaurantName  string
}

// PotentialOrder is a forecasted future order for a lead. Probability
// is a 0-100 percentage.
type PotentialOrder struct {
	ID              int64
	LeadID          int64
	ExpectedDate    time.Time
	EstimatedAmount *float64
	Probability     *int
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
