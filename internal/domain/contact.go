package domain

import "time"

// Contact is an additional named contact attached to a lead beyond
// the lead's primary contact person.
type Contact struct {
	ID            int64
	LeadID        int64
	ContactPerson string
	ContactEmail  *string
	ContactPhone  *string
	Role          string
	IsPrimary     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
