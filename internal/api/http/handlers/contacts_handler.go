package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-crm/internal/api/dto"
	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/service"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// ContactsHandler manages additional-contact endpoints.
type ContactsHandler struct {
	service *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{service: contactService}
}

// ListContacts GET /api/contacts?lead_id=.
func (h *ContactsHandler) ListContacts(c *fiber.Ctx) error {
	var leadID *int64
	if raw := c.Query("lead_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return apperrors.NewValidationError("invalid lead_id", nil)
		}
		leadID = &parsed
	}
	contacts, err := h.service.ListContacts(c.Context(), leadID)
	if err != nil {
		return err
	}
	items := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, contactResponse(&contacts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateContact POST /api/contacts.
func (h *ContactsHandler) CreateContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contact, err := h.service.CreateContact(c.Context(), contactInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": contactResponse(contact)})
}

// UpdateContact PUT /api/contacts/:id.
func (h *ContactsHandler) UpdateContact(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contact, err := h.service.UpdateContact(c.Context(), id, contactInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactResponse(contact)})
}

// DeleteContact DELETE /api/contacts/:id.
func (h *ContactsHandler) DeleteContact(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteContact(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

func contactInput(req dto.ContactRequest) service.ContactInput {
	return service.ContactInput{
		LeadID:        req.LeadID,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Role:          req.Role,
		IsPrimary:     req.IsPrimary,
	}
}

func contactResponse(contact *domain.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:            contact.ID,
		LeadID:        contact.LeadID,
		ContactPerson: contact.ContactPerson,
		ContactEmail:  contact.ContactEmail,
		ContactPhone:  contact.ContactPhone,
		Role:          contact.Role,
		IsPrimary:     contact.IsPrimary,
		CreatedAt:     contact.CreatedAt,
		UpdatedAt:     contact.UpdatedAt,
	}
}
