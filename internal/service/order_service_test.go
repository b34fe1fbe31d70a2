package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/events"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

func TestCreateOrderRejectsInvalidInput(t *testing.T) {
	svc := NewOrderService(OrderDependencies{OrderRepo: new(mockOrderRepo)})

	for _, input := range []OrderInput{
		{TotalAmount: 100},
		{LeadID: 1},
		{LeadID: 1, TotalAmount: -5},
	} {
		_, err := svc.CreateOrder(context.Background(), input)
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	}
}

func TestCreateOrderStartsPendingAndInvalidates(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
		return order.Status == domain.OrderStatusPending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 21
	}).Return(nil)

	cache := &fakeSnapshotCache{snapshot: &domain.PerformanceSnapshot{}}
	dispatcher := &recordingDispatcher{}
	svc := NewOrderService(OrderDependencies{OrderRepo: repo, Cache: cache, Dispatcher: dispatcher})

	order, err := svc.CreateOrder(context.Background(), OrderInput{LeadID: 1, TotalAmount: 350})

	require.NoError(t, err)
	assert.Equal(t, int64(21), order.ID)
	assert.Equal(t, 1, cache.invalidations)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventOrderCreated, dispatcher.published[0].Type)
}

func TestMarkOrderCompletedUnknownIDReportsNotFound(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("MarkCompleted", mock.Anything, int64(33)).Return(pgx.ErrNoRows)

	svc := NewOrderService(OrderDependencies{OrderRepo: repo})

	err := svc.MarkOrderCompleted(context.Background(), 33)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCreatePotentialOrderValidation(t *testing.T) {
	svc := NewPotentialOrderService(nil, nil)
	probability := 130

	_, err := svc.CreatePotentialOrder(context.Background(), &domain.PotentialOrder{
		LeadID:      1,
		Probability: &probability,
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "expected_date")
	assert.Contains(t, domainErr.Details, "probability")
}
