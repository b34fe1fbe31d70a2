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

// LeadsHandler manages lead endpoints.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: leadService}
}

// CreateLead POST /api/leads.
func (h *LeadsHandler) CreateLead(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	lead, err := h.service.CreateLead(c.Context(), leadInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leadResponse(lead)})
}

// ListLeads GET /api/leads.
func (h *LeadsHandler) ListLeads(c *fiber.Ctx) error {
	var status *domain.LeadStatus
	if s := c.Query("status"); s != "" {
		ls := domain.LeadStatus(s)
		status = &ls
	}
	leads, err := h.service.ListLeads(c.Context(), status)
	if err != nil {
		return err
	}
	items := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		items = append(items, leadResponse(&leads[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetLead GET /api/leads/:id.
func (h *LeadsHandler) GetLead(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	lead, err := h.service.GetLead(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leadResponse(lead)})
}

// UpdateLead PUT /api/leads/:id.
func (h *LeadsHandler) UpdateLead(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	lead, err := h.service.UpdateLead(c.Context(), id, leadInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leadResponse(lead)})
}

// DeleteLead DELETE /api/leads/:id.
func (h *LeadsHandler) DeleteLead(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteLead(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

func leadInput(req dto.LeadRequest) service.LeadInput {
	return service.LeadInput{
		RestaurantName: req.RestaurantName,
		Location:       req.Location,
		Type:           req.Type,
		Status:         req.Status,
		ContactPerson:  req.ContactPerson,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		Notes:          req.Notes,
	}
}

func leadResponse(lead *domain.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:             lead.ID,
		RestaurantName: lead.RestaurantName,
		Location:       lead.Location,
		Type:           lead.Type,
		Status:         lead.Status,
		ContactPerson:  lead.ContactPerson,
		ContactEmail:   lead.ContactEmail,
		ContactPhone:   lead.ContactPhone,
		Notes:          lead.Notes,
		CreatedAt:      lead.CreatedAt,
		UpdatedAt:      lead.UpdatedAt,
	}
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{param: c.Params(param)})
	}
	return id, nil
}

func parseLimit(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
