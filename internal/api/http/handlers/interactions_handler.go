package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-crm/internal/api/dto"
	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/service"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// InteractionsHandler manages interaction endpoints.
type InteractionsHandler struct {
	service *service.InteractionService
}

// NewInteractionsHandler constructs handler.
func NewInteractionsHandler(interactionService *service.InteractionService) *InteractionsHandler {
	return &InteractionsHandler{service: interactionService}
}

// ListInteractions GET /api/interactions.
func (h *InteractionsHandler) ListInteractions(c *fiber.Ctx) error {
	interactions, err := h.service.ListInteractions(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.InteractionResponse, 0, len(interactions))
	for i := range interactions {
		items = append(items, interactionResponse(&interactions[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CountByLead GET /api/interactions/count-by-lead.
func (h *InteractionsHandler) CountByLead(c *fiber.Ctx) error {
	counts, err := h.service.CountInteractionsByLead(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LeadInteractionCountResponse, 0, len(counts))
	for _, count := range counts {
		items = append(items, dto.LeadInteractionCountResponse{
			LeadID:           count.LeadID,
			RestaurantName:   count.RestaurantName,
			InteractionCount: count.InteractionCount,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// LogInteraction POST /api/interactions.
func (h *InteractionsHandler) LogInteraction(c *fiber.Ctx) error {
	var req dto.LogInteractionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input := service.LogInteractionInput{
		LeadID:           req.LeadID,
		ContactID:        req.ContactID,
		IsPrimaryContact: req.IsPrimaryContact,
		Type:             req.Type,
		Status:           req.Status,
		Notes:            req.Notes,
		Duration:         req.Duration,
		Rating:           req.Rating,
	}
	if req.Order != nil {
		input.Order = &service.InteractionOrderInput{
			TotalAmount: req.Order.TotalAmount,
			Notes:       req.Order.Notes,
		}
	}
	interaction, err := h.service.LogInteraction(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": interactionResponse(interaction)})
}

func interactionResponse(interaction *domain.Interaction) dto.InteractionResponse {
	return dto.InteractionResponse{
		ID:        interaction.ID,
		LeadID:    interaction.LeadID,
		ContactID: interaction.ContactID,
		Type:      interaction.Type,
		Status:    interaction.Status,
		Notes:     interaction.Notes,
		Duration:  interaction.Duration,
		Rating:    interaction.Rating,
		OrderID:   interaction.OrderID,
		CreatedAt: interaction.CreatedAt,
	}
}
