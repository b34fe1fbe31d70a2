package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/events"
	"github.com/spec-kit/restaurant-crm/internal/repository"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// OrderService coordinates order workflows.
type OrderService struct {
	orders     repository.OrderRepository
	cache      SnapshotCache
	dispatcher events.Dispatcher
}

// OrderDependencies bundles collaborators for the order service.
type OrderDependencies struct {
	OrderRepo  repository.OrderRepository
	Cache      SnapshotCache
	Dispatcher events.Dispatcher
}

// OrderInput describes order creation payload.
type OrderInput struct {
	LeadID      int64
	TotalAmount float64
	Notes       *string
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// CreateOrder records an order in Pending state.
func (s *OrderService) CreateOrder(ctx context.Context, input OrderInput) (*domain.Order, error) {
	if input.LeadID <= 0 || input.TotalAmount <= 0 {
		return nil, apperrors.NewValidationError("lead_id and a positive total_amount required", nil)
	}
	order := &domain.Order{
		LeadID:      input.LeadID,
		TotalAmount: input.TotalAmount,
		Status:      domain.OrderStatusPending,
		Notes:       input.Notes,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx)
	s.publishEvent(ctx, events.Event{
		Type:   events.EventOrderCreated,
		LeadID: order.LeadID,
		Payload: events.OrderCreatedPayload{
			OrderID:     order.ID,
			TotalAmount: order.TotalAmount,
		},
	})
	return order, nil
}

// MarkOrderCompleted flips an order to Completed.
func (s *OrderService) MarkOrderCompleted(ctx context.Context, orderID int64) error {
	if err := s.orders.MarkCompleted(ctx, orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("order", map[string]any{"id": orderID})
		}
		return err
	}

	s.invalidateSnapshot(ctx)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventOrderCompleted,
		Payload: events.OrderCompletedPayload{OrderID: orderID},
	})
	return nil
}

// ListRecentOrders returns the latest orders with lead names.
func (s *OrderService) ListRecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	return s.orders.ListRecent(ctx, limit)
}

func (s *OrderService) invalidateSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx)
}

func (s *OrderService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
