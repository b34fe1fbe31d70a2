package domain

import "time"

// CallStatus enumerates lifecycle states for a scheduled call.
type CallStatus string

const (
	CallStatusScheduled CallStatus = "scheduled"
	CallStatusCompleted CallStatus = "completed"
	CallStatusCancelled CallStatus = "cancelled"
)

// ScheduledCall is a planned call with a lead's contact. Duration is
// in minutes. A call transitions scheduled -> completed exactly once,
// at which point a matching Interaction is written in the same
// transaction; cancelled is terminal.
type ScheduledCall struct {
	ID            int64
	LeadID        int64
	ContactID     int64
	ScheduledDate time.Time
	Duration      int
	Notes         *string
	Status        CallStatus
	ReminderSent  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UpcomingCall is a scheduled call enriched with display names for
// the lead and contact. The joins are outer joins, so either name may
// be nil when the referenced row is gone.
type UpcomingCall struct {
	ID             int64
	ScheduledDate  time.Time
	Duration       int
	Notes          *string
	Status         CallStatus
	RestaurantName *string
	ContactPerson  *string
}
