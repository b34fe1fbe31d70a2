package service

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/events"
)

// mockPerformanceRepo
type mockPerformanceRepo struct {
	mock.Mock
}

func (m *mockPerformanceRepo) RevenueByLead(ctx context.Context) ([]domain.LeadRevenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeadRevenue), args.Error(1)
}

func (m *mockPerformanceRepo) RatingByLead(ctx context.Context) ([]domain.LeadRating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeadRating), args.Error(1)
}

func (m *mockPerformanceRepo) RevenueTotals(ctx context.Context, from, to time.Time) (domain.RevenueTotals, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(domain.RevenueTotals), args.Error(1)
}

func (m *mockPerformanceRepo) PotentialTotals(ctx context.Context, after time.Time) (domain.PotentialTotals, error) {
	args := m.Called(ctx, after)
	return args.Get(0).(domain.PotentialTotals), args.Error(1)
}

func (m *mockPerformanceRepo) DailyRevenue(ctx context.Context, from, to time.Time) ([]domain.DailyRevenue, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRevenue), args.Error(1)
}

// mockCallRepo
type mockCallRepo struct {
	mock.Mock
}

func (m *mockCallRepo) Create(ctx context.Context, call *domain.ScheduledCall) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *mockCallRepo) GetByID(ctx context.Context, id int64) (*domain.ScheduledCall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledCall), args.Error(1)
}

func (m *mockCallRepo) ListUpcoming(ctx context.Context) ([]domain.UpcomingCall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpcomingCall), args.Error(1)
}

func (m *mockCallRepo) Complete(ctx context.Context, call *domain.ScheduledCall) (*domain.Interaction, error) {
	args := m.Called(ctx, call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interaction), args.Error(1)
}

func (m *mockCallRepo) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockLeadRepo
type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockLeadRepo) Update(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *mockLeadRepo) List(ctx context.Context, status *domain.LeadStatus) ([]domain.Lead, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *mockLeadRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockOrderRepo
type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) MarkCompleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOrderRepo) ListRecent(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentOrder), args.Error(1)
}

// mockInteractionRepo
type mockInteractionRepo struct {
	mock.Mock
}

func (m *mockInteractionRepo) Create(ctx context.Context, interaction *domain.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *mockInteractionRepo) List(ctx context.Context) ([]domain.Interaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interaction), args.Error(1)
}

func (m *mockInteractionRepo) CountByLead(ctx context.Context) ([]domain.LeadInteractionCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeadInteractionCount), args.Error(1)
}

var errCacheMiss = errors.New("cache miss")

// fakeSnapshotCache is an in-memory stand-in for the Redis-backed cache.
type fakeSnapshotCache struct {
	snapshot      *domain.PerformanceSnapshot
	sets          int
	invalidations int
}

func (f *fakeSnapshotCache) Get(ctx context.Context) (*domain.PerformanceSnapshot, error) {
	if f.snapshot == nil {
		return nil, errCacheMiss
	}
	return f.snapshot, nil
}

func (f *fakeSnapshotCache) Set(ctx context.Context, snapshot *domain.PerformanceSnapshot) error {
	f.snapshot = snapshot
	f.sets++
	return nil
}

func (f *fakeSnapshotCache) Invalidate(ctx context.Context) error {
	f.snapshot = nil
	f.invalidations++
	return nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}
