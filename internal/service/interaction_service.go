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

// InteractionService coordinates interaction logging and reads.
type InteractionService struct {
	interactions repository.InteractionRepository
	orders       repository.OrderRepository
	leads        repository.LeadRepository
	cache        SnapshotCache
	dispatcher   events.Dispatcher
}

// InteractionDependencies bundles collaborators for the service.
type InteractionDependencies struct {
	InteractionRepo repository.InteractionRepository
	OrderRepo       repository.OrderRepository
	LeadRepo        repository.LeadRepository
	Cache           SnapshotCache
	Dispatcher      events.Dispatcher
}

// InteractionOrderInput is the optional order placed during an interaction.
type InteractionOrderInput struct {
	TotalAmount float64
	Notes       *string
}

// LogInteractionInput describes the log-interaction payload.
type LogInteractionInput struct {
	LeadID           int64
	ContactID        int64
	IsPrimaryContact bool
	Type             domain.InteractionType
	Status           domain.InteractionStatus
	Notes            *string
	Duration         *int
	Rating           *int
	Order            *InteractionOrderInput
}

// NewInteractionService constructs the service.
func NewInteractionService(deps InteractionDependencies) *InteractionService {
	return &InteractionService{
		interactions: deps.InteractionRepo,
		orders:       deps.OrderRepo,
		leads:        deps.LeadRepo,
		cache:        deps.Cache,
		dispatcher:   deps.Dispatcher,
	}
}

// LogInteraction records an interaction, optionally creating the
// order placed during it first and linking it. For primary contacts
// the lead's own id doubles as the contact id; additional contacts
// pass their row id.
func (s *InteractionService) LogInteraction(ctx context.Context, input LogInteractionInput) (*domain.Interaction, error) {
	if err := validateInteractionInput(input); err != nil {
		return nil, err
	}

	var orderID *int64
	if input.Order != nil {
		if input.Order.TotalAmount <= 0 {
			return nil, apperrors.NewValidationError("order total_amount must be positive", nil)
		}
		order := &domain.Order{
			LeadID:      input.LeadID,
			TotalAmount: input.Order.TotalAmount,
			Status:      domain.OrderStatusPending,
			Notes:       input.Order.Notes,
		}
		if err := s.orders.Create(ctx, order); err != nil {
			return nil, err
		}
		orderID = &order.ID
	}

	contactID := input.ContactID
	if input.IsPrimaryContact {
		lead, err := s.leads.GetByID(ctx, input.LeadID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("lead", map[string]any{"id": input.LeadID})
			}
			return nil, err
		}
		contactID = lead.ID
	}

	interaction := &domain.Interaction{
		LeadID:    input.LeadID,
		ContactID: contactID,
		Type:      input.Type,
		Status:    input.Status,
		Notes:     input.Notes,
		Duration:  input.Duration,
		Rating:    input.Rating,
		OrderID:   orderID,
	}
	if err := s.interactions.Create(ctx, interaction); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	s.publishEvent(ctx, events.Event{
		Type:   events.EventInteractionLogged,
		LeadID: interaction.LeadID,
		Payload: events.InteractionLoggedPayload{
			InteractionID: interaction.ID,
			Type:          interaction.Type,
			OrderID:       interaction.OrderID,
		},
	})
	return interaction, nil
}

// ListInteractions returns all interactions, oldest first.
func (s *InteractionService) ListInteractions(ctx context.Context) ([]domain.Interaction, error) {
	return s.interactions.List(ctx)
}

// CountInteractionsByLead returns per-lead interaction tallies.
func (s *InteractionService) CountInteractionsByLead(ctx context.Context) ([]domain.LeadInteractionCount, error) {
	return s.interactions.CountByLead(ctx)
}

func validateInteractionInput(input LogInteractionInput) error {
	details := map[string]any{}
	if input.LeadID <= 0 {
		details["lead_id"] = "required"
	}
	if !input.IsPrimaryContact && input.ContactID <= 0 {
		details["contact_id"] = "required"
	}
	switch input.Type {
	case domain.InteractionTypeCall, domain.InteractionTypeEmail, domain.InteractionTypeText:
	default:
		details["type"] = "must be call, email or text"
	}
	if input.Status == "" {
		details["status"] = "required"
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		details["rating"] = "must be between 1 and 5"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid interaction payload", details)
	}
	return nil
}

func (s *InteractionService) publishEvent(ctx context.Context, event events.Event) {
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
