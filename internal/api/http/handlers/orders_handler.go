package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-crm/internal/api/dto"
	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/service"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// OrdersHandler manages order endpoints.
type OrdersHandler struct {
	orders     *service.OrderService
	potentials *service.PotentialOrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService, potentialService *service.PotentialOrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService, potentials: potentialService}
}

// CreateOrder POST /api/orders.
func (h *OrdersHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	order, err := h.orders.CreateOrder(c.Context(), service.OrderInput{
		LeadID:      req.LeadID,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderResponse(order)})
}

// MarkOrderComplete PUT /api/orders/:id/complete.
func (h *OrdersHandler) MarkOrderComplete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.orders.MarkOrderCompleted(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"completed": true}})
}

// ListRecentOrders GET /api/orders/recent.
func (h *OrdersHandler) ListRecentOrders(c *fiber.Ctx) error {
	limit := parseLimit(c.Query("limit"), 5)
	orders, err := h.orders.ListRecentOrders(c.Context(), limit)
	if err != nil {
		return err
	}
	items := make([]dto.RecentOrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, dto.RecentOrderResponse{
			ID:             order.ID,
			OrderDate:      order.OrderDate,
			TotalAmount:    order.TotalAmount,
			Status:         order.Status,
			RestaurantName: order.RestaurantName,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreatePotentialOrder POST /api/potential-orders.
func (h *OrdersHandler) CreatePotentialOrder(c *fiber.Ctx) error {
	var req dto.PotentialOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	po, err := h.potentials.CreatePotentialOrder(c.Context(), &domain.PotentialOrder{
		LeadID:          req.LeadID,
		ExpectedDate:    req.ExpectedDate,
		EstimatedAmount: req.EstimatedAmount,
		Probability:     req.Probability,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": po.ID}})
}

// ListPotentialOrders GET /api/potential-orders.
func (h *OrdersHandler) ListPotentialOrders(c *fiber.Ctx) error {
	limit := parseLimit(c.Query("limit"), 5)
	potentials, err := h.potentials.ListUpcomingPotentialOrders(c.Context(), limit)
	if err != nil {
		return err
	}
	items := make([]dto.PotentialOrderResponse, 0, len(potentials))
	for _, po := range potentials {
		items = append(items, dto.PotentialOrderResponse{
			ID:              po.ID,
			ExpectedDate:    po.ExpectedDate,
			EstimatedAmount: po.EstimatedAmount,
			Probability:     po.Probability,
			RestaurantName:  po.RestaurantName,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func orderResponse(order *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		LeadID:      order.LeadID,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Notes:       order.Notes,
		CreatedAt:   order.CreatedAt,
	}
}
