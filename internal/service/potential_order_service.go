package service

import (
	"context"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/repository"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// PotentialOrderService coordinates forecast entries.
type PotentialOrderService struct {
	potentials repository.PotentialOrderRepository
	cache      SnapshotCache
}

// NewPotentialOrderService constructs the service.
func NewPotentialOrderService(potentials repository.PotentialOrderRepository, cache SnapshotCache) *PotentialOrderService {
	return &PotentialOrderService{potentials: potentials, cache: cache}
}

// CreatePotentialOrder records a forecasted order.
func (s *PotentialOrderService) CreatePotentialOrder(ctx context.Context, po *domain.PotentialOrder) (*domain.PotentialOrder, error) {
	details := map[string]any{}
	if po.LeadID <= 0 {
		details["lead_id"] = "required"
	}
	if po.ExpectedDate.IsZero() {
		details["expected_date"] = "required"
	}
	if po.EstimatedAmount != nil && *po.EstimatedAmount <= 0 {
		details["estimated_amount"] = "must be positive"
	}
	if po.Probability != nil && (*po.Probability < 0 || *po.Probability > 100) {
		details["probability"] = "must be between 0 and 100"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid potential order payload", details)
	}

	if err := s.potentials.Create(ctx, po); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	return po, nil
}

// ListUpcomingPotentialOrders returns the nearest forecasted orders.
func (s *PotentialOrderService) ListUpcomingPotentialOrders(ctx context.Context, limit int) ([]domain.UpcomingPotentialOrder, error) {
	return s.potentials.ListUpcoming(ctx, limit)
}
