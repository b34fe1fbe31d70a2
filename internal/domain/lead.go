package domain

import "time"

// LeadStatus enumerates pipeline states for a sales lead.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusNegotiating LeadStatus = "Negotiating"
	LeadStatusClosedWon   LeadStatus = "Closed Won"
	LeadStatusClosedLost  LeadStatus = "Closed Lost"
)

// Lead is the aggregate root for a restaurant prospect.
type Lead struct {
	ID             int64
	RestaurantName string
	Location       string
	Type           string
	Status         LeadStatus
	ContactPerson  *string
	ContactEmail   *string
	ContactPhone   *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
