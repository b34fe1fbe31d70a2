package domain

import "time"

// InteractionType enumerates contact channels.
type InteractionType string

const (
	InteractionTypeCall  InteractionType = "call"
	InteractionTypeEmail InteractionType = "email"
	InteractionTypeText  InteractionType = "text"
)

// InteractionStatus enumerates outcomes of an interaction.
type InteractionStatus string

const (
	InteractionStatusCompleted InteractionStatus = "completed"
	InteractionStatusFailed    InteractionStatus = "failed"
	InteractionStatusNoAnswer  InteractionStatus = "no-answer"
)

// LeadInteractionCount is the per-lead interaction tally.
type LeadInteractionCount struct {
	LeadID           int64
	RestaurantName   string
	InteractionCount int
}

// Interaction records a single touchpoint with a lead's contact.
// Duration is in minutes and only meaningful for calls; a completed
// scheduled call carries its duration over unchanged. Rating is an
// optional 1-5 score. OrderID links the order placed during the
// interaction, when there was one.
type Interaction struct {
	ID        int64
	LeadID    int64
	ContactID int64
	Type      InteractionType
	Status    InteractionStatus
	Notes     *string
	Duration  *int
	Rating    *int
	OrderID   *int64
	CreatedAt time.Time
}
