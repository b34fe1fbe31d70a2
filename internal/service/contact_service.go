package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/repository"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// ContactService coordinates additional-contact CRUD.
type ContactService struct {
	contacts repository.ContactRepository
}

// ContactInput describes contact creation/update payload.
type ContactInput struct {
	LeadID        int64
	ContactPerson string
	ContactEmail  *string
	ContactPhone  *string
	Role          string
	IsPrimary     bool
}

// NewContactService constructs the service.
func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// CreateContact adds a contact to a lead.
func (s *ContactService) CreateContact(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	if err := validateContactInput(input, true); err != nil {
		return nil, err
	}
	contact := &domain.Contact{
		LeadID:        input.LeadID,
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		Role:          strings.TrimSpace(input.Role),
		IsPrimary:     input.IsPrimary,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateContact replaces a contact's mutable fields.
func (s *ContactService) UpdateContact(ctx context.Context, id int64, input ContactInput) (*domain.Contact, error) {
	if err := validateContactInput(input, false); err != nil {
		return nil, err
	}
	contact := &domain.Contact{
		ID:            id,
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		Role:          strings.TrimSpace(input.Role),
		IsPrimary:     input.IsPrimary,
	}
	if err := s.contacts.Update(ctx, contact); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("contact", map[string]any{"id": id})
		}
		return nil, err
	}
	return contact, nil
}

// ListContacts returns contacts, optionally scoped to one lead.
func (s *ContactService) ListContacts(ctx context.Context, leadID *int64) ([]domain.Contact, error) {
	return s.contacts.List(ctx, leadID)
}

// DeleteContact removes a contact.
func (s *ContactService) DeleteContact(ctx context.Context, id int64) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("contact", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

func validateContactInput(input ContactInput, requireLead bool) error {
	missing := map[string]any{}
	if requireLead && input.LeadID <= 0 {
		missing["lead_id"] = "required"
	}
	if strings.TrimSpace(input.ContactPerson) == "" {
		missing["contact_person"] = "required"
	}
	if strings.TrimSpace(input.Role) == "" {
		missing["role"] = "required"
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required contact fields", missing)
	}
	return nil
}
