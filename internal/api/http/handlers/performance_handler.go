package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-crm/internal/api/dto"
	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/service"
)

// PerformanceHandler serves the reporting snapshot.
type PerformanceHandler struct {
	service *service.PerformanceService
}

// NewPerformanceHandler constructs handler.
func NewPerformanceHandler(performanceService *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{service: performanceService}
}

// GetPerformance GET /api/performance.
func (h *PerformanceHandler) GetPerformance(c *fiber.Ctx) error {
	snapshot, err := h.service.Fetch(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": performanceResponse(snapshot)})
}

func performanceResponse(snapshot *domain.PerformanceSnapshot) dto.PerformanceResponse {
	return dto.PerformanceResponse{
		RevenueByLead:      leadRevenueResponses(snapshot.RevenueByLead),
		RatingByLead:       leadRatingResponses(snapshot.RatingByLead),
		LowPerformingLeads: leadRevenueResponses(snapshot.LowPerformingLeads),
		MonthlyRevenue: dto.RevenueTotalsResponse{
			TotalRevenue: snapshot.MonthlyRevenue.TotalRevenue,
			OrderCount:   snapshot.MonthlyRevenue.OrderCount,
		},
		PotentialRevenue: dto.PotentialTotalsResponse{
			TotalPotentialRevenue: snapshot.PotentialRevenue.TotalPotentialRevenue,
			PotentialOrderCount:   snapshot.PotentialRevenue.PotentialOrderCount,
		},
		DailyRevenueBreakdown: dailyRevenueResponses(snapshot.DailyRevenueBreakdown),
	}
}

func leadRevenueResponses(entries []domain.LeadRevenue) []dto.LeadRevenueResponse {
	resp := make([]dto.LeadRevenueResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, dto.LeadRevenueResponse{
			LeadID:         entry.LeadID,
			RestaurantName: entry.RestaurantName,
			TotalRevenue:   entry.TotalRevenue,
			OrderCount:     entry.OrderCount,
			AvgOrderValue:  entry.AvgOrderValue,
			LastOrderDate:  entry.LastOrderDate,
		})
	}
	return resp
}

func leadRatingResponses(entries []domain.LeadRating) []dto.LeadRatingResponse {
	resp := make([]dto.LeadRatingResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, dto.LeadRatingResponse{
			LeadID:              entry.LeadID,
			RestaurantName:      entry.RestaurantName,
			AvgRating:           entry.AvgRating,
			InteractionCount:    entry.InteractionCount,
			LastInteractionDate: entry.LastInteractionDate,
		})
	}
	return resp
}

func dailyRevenueResponses(entries []domain.DailyRevenue) []dto.DailyRevenueResponse {
	resp := make([]dto.DailyRevenueResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, dto.DailyRevenueResponse{
			Date:         entry.Date,
			DailyRevenue: entry.DailyRevenue,
		})
	}
	return resp
}
