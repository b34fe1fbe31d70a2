package dto

import "time"

// ContactRequest payload for creating or updating a contact.
type ContactRequest struct {
	LeadID        int64   `json:"lead_id"`
	ContactPerson string  `json:"contact_person"`
	ContactEmail  *string `json:"contact_email"`
	ContactPhone  *string `json:"contact_phone"`
	Role          string  `json:"role"`
	IsPrimary     bool    `json:"is_primary"`
}

// ContactResponse full contact representation.
type ContactResponse struct {
	ID            int64     `json:"id"`
	LeadID        int64     `json:"lead_id"`
	ContactPerson string    `json:"contact_person"`
	ContactEmail  *string   `json:"contact_email"`
	ContactPhone  *string   `json:"contact_phone"`
	Role          string    `json:"role"`
	IsPrimary     bool      `json:"is_primary"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
