package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/events"
	"github.com/spec-kit/restaurant-crm/internal/repository"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

// LeadService coordinates lead CRUD workflows.
type LeadService struct {
	leads      repository.LeadRepository
	cache      SnapshotCache
	dispatcher events.Dispatcher
}

// LeadDependencies bundles collaborators for the lead service.
type LeadDependencies struct {
	LeadRepo   repository.LeadRepository
	Cache      SnapshotCache
	Dispatcher events.Dispatcher
}

// LeadInput describes lead creation/update payload.
type LeadInput struct {
	RestaurantName string
	Location       string
	Type           string
	Status         domain.LeadStatus
	ContactPerson  *string
	ContactEmail   *string
	ContactPhone   *string
	Notes          *string
}

// NewLeadService constructs the service.
func NewLeadService(deps LeadDependencies) *LeadService {
	return &LeadService{
		leads:      deps.LeadRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// CreateLead creates a new lead, defaulting status to New.
func (s *LeadService) CreateLead(ctx context.Context, input LeadInput) (*domain.Lead, error) {
	if err := validateLeadInput(input); err != nil {
		return nil, err
	}
	lead := &domain.Lead{
		RestaurantName: strings.TrimSpace(input.RestaurantName),
		Location:       strings.TrimSpace(input.Location),
		Type:           strings.TrimSpace(input.Type),
		Status:         input.Status,
		ContactPerson:  input.ContactPerson,
		ContactEmail:   input.ContactEmail,
		ContactPhone:   input.ContactPhone,
		Notes:          input.Notes,
	}
	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:   events.EventLeadCreated,
		LeadID: lead.ID,
		Payload: events.LeadCreatedPayload{
			RestaurantName: lead.RestaurantName,
			Location:       lead.Location,
			Status:         lead.Status,
		},
	})
	return lead, nil
}

// UpdateLead replaces mutable lead fields.
func (s *LeadService) UpdateLead(ctx context.Context, id int64, input LeadInput) (*domain.Lead, error) {
	if err := validateLeadInput(input); err != nil {
		return nil, err
	}
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lead", map[string]any{"id": id})
		}
		return nil, err
	}

	lead.RestaurantName = strings.TrimSpace(input.RestaurantName)
	lead.Location = strings.TrimSpace(input.Location)
	lead.Type = strings.TrimSpace(input.Type)
	if input.Status != "" {
		lead.Status = input.Status
	}
	lead.ContactPerson = input.ContactPerson
	lead.ContactEmail = input.ContactEmail
	lead.ContactPhone = input.ContactPhone
	lead.Notes = input.Notes

	if err := s.leads.Update(ctx, lead); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lead", map[string]any{"id": id})
		}
		return nil, err
	}
	return lead, nil
}

// GetLead fetches a single lead.
func (s *LeadService) GetLead(ctx context.Context, id int64) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lead", map[string]any{"id": id})
		}
		return nil, err
	}
	return lead, nil
}

// ListLeads returns all leads, optionally filtered by status.
func (s *LeadService) ListLeads(ctx context.Context, status *domain.LeadStatus) ([]domain.Lead, error) {
	return s.leads.List(ctx, status)
}

// DeleteLead removes a lead and, via cascade, its dependent rows. The
// reporting snapshot is invalidated since the aggregates change.
func (s *LeadService) DeleteLead(ctx context.Context, id int64) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("lead", map[string]any{"id": id})
		}
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	return nil
}

func validateLeadInput(input LeadInput) error {
	missing := map[string]any{}
	if strings.TrimSpace(input.RestaurantName) == "" {
		missing["restaurant_name"] = "required"
	}
	if strings.TrimSpace(input.Location) == "" {
		missing["location"] = "required"
	}
	if strings.TrimSpace(input.Type) == "" {
		missing["type"] = "required"
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required lead fields", missing)
	}
	return nil
}

func (s *LeadService) publishEvent(ctx context.Context, event events.Event) {
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
