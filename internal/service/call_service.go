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

// CallService coordinates the scheduled-call lifecycle.
type CallService struct {
	calls      repository.ScheduledCallRepository
	cache      SnapshotCache
	dispatcher events.Dispatcher
}

// CallDependencies bundles collaborators for the call service.
type CallDependencies struct {
	CallRepo   repository.ScheduledCallRepository
	Cache      SnapshotCache
	Dispatcher events.Dispatcher
}

// ScheduleCallInput describes call creation payload.
type ScheduleCallInput struct {
	LeadID        int64
	ContactID     int64
	ScheduledDate time.Time
	Duration      int
	Notes         *string
}

// NewCallService constructs the service.
func NewCallService(deps CallDependencies) *CallService {
	return &CallService{
		calls:      deps.CallRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// ScheduleCall creates a call in scheduled state.
func (s *CallService) ScheduleCall(ctx context.Context, input ScheduleCallInput) (*domain.ScheduledCall, error) {
	if input.LeadID <= 0 || input.ContactID <= 0 || input.ScheduledDate.IsZero() || input.Duration <= 0 {
		return nil, apperrors.NewValidationError("lead_id, contact_id, scheduled_date, duration required", nil)
	}

	call := &domain.ScheduledCall{
		LeadID:        input.LeadID,
		ContactID:     input.ContactID,
		ScheduledDate: input.ScheduledDate,
		Duration:      input.Duration,
		Notes:         input.Notes,
		Status:        domain.CallStatusScheduled,
		ReminderSent:  false,
	}
	if err := s.calls.Create(ctx, call); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventCallScheduled,
		LeadID: call.LeadID,
		Payload: events.CallScheduledPayload{
			CallID:        call.ID,
			ContactID:     call.ContactID,
			ScheduledDate: call.ScheduledDate,
		},
	})
	return call, nil
}

// CompleteCall transitions a scheduled call to completed, recording
// the matching interaction in the same transaction. Completion policy
// is status-update, so history is preserved; a call already completed
// or cancelled is no longer part of the active set and reports not
// found, which also makes a second completion of the same id a no-op.
func (s *CallService) CompleteCall(ctx context.Context, callID int64) (*domain.Interaction, error) {
	call, err := s.calls.GetByID(ctx, callID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("scheduled call", map[string]any{"id": callID})
		}
		return nil, err
	}
	if call.Status != domain.CallStatusScheduled {
		return nil, apperrors.NewNotFound("scheduled call", map[string]any{"id": callID})
	}

	interaction, err := s.calls.Complete(ctx, call)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("scheduled call", map[string]any{"id": callID})
		}
		return nil, err
	}

	s.invalidateSnapshot(ctx)
	s.publishEvent(ctx, events.Event{
		Type:   events.EventCallCompleted,
		LeadID: call.LeadID,
		Payload: events.CallCompletedPayload{
			CallID:        call.ID,
			InteractionID: interaction.ID,
		},
	})
	return interaction, nil
}

// CancelCall moves a scheduled call into the terminal cancelled
// state. Only calls still in scheduled state can be cancelled.
func (s *CallService) CancelCall(ctx context.Context, callID int64) error {
	if err := s.calls.Cancel(ctx, callID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("scheduled call", map[string]any{"id": callID})
		}
		return err
	}
	return nil
}

// ListUpcoming returns future calls still in scheduled state, with
// lead and contact display names attached.
func (s *CallService) ListUpcoming(ctx context.Context) ([]domain.UpcomingCall, error) {
	return s.calls.ListUpcoming(ctx)
}

func (s *CallService) invalidateSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx)
}

func (s *CallService) publishEvent(ctx context.Context, event events.Event) {
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
