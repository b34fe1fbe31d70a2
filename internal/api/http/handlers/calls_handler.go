package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-crm/internal/api/dto"
	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/service"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// CallsHandler manages scheduled-call endpoints.
type CallsHandler struct {
	service *service.CallService
}

// NewCallsHandler constructs handler.
func NewCallsHandler(callService *service.CallService) *CallsHandler {
	return &CallsHandler{service: callService}
}

// ScheduleCall POST /api/scheduled-calls.
func (h *CallsHandler) ScheduleCall(c *fiber.Ctx) error {
	var req dto.ScheduleCallRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	call, err := h.service.ScheduleCall(c.Context(), service.ScheduleCallInput{
		LeadID:        req.LeadID,
		ContactID:     req.ContactID,
		ScheduledDate: req.ScheduledDate,
		Duration:      req.Duration,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": scheduledCallResponse(call)})
}

// ListUpcomingCalls GET /api/scheduled-calls.
func (h *CallsHandler) ListUpcomingCalls(c *fiber.Ctx) error {
	calls, err := h.service.ListUpcoming(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UpcomingCallResponse, 0, len(calls))
	for _, call := range calls {
		items = append(items, dto.UpcomingCallResponse{
			ID:             call.ID,
			ScheduledDate:  call.ScheduledDate,
			Duration:       call.Duration,
			Notes:          call.Notes,
			Status:         call.Status,
			RestaurantName: call.RestaurantName,
			ContactPerson:  call.ContactPerson,
		})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"calls": items}})
}

// CompleteCall PUT /api/scheduled-calls/:id/complete.
func (h *CallsHandler) CompleteCall(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	interaction, err := h.service.CompleteCall(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"completed":      true,
		"interaction_id": interaction.ID,
	}})
}

// CancelCall PUT /api/scheduled-calls/:id/cancel.
func (h *CallsHandler) CancelCall(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.CancelCall(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"cancelled": true}})
}

func scheduledCallResponse(call *domain.ScheduledCall) dto.ScheduledCallResponse {
	return dto.ScheduledCallResponse{
		ID:            call.ID,
		LeadID:        call.LeadID,
		ContactID:     call.ContactID,
		ScheduledDate: call.ScheduledDate,
		Duration:      call.Duration,
		Notes:         call.Notes,
		Status:        call.Status,
		CreatedAt:     call.CreatedAt,
	}
}
