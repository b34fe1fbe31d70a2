package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/events"
	apperrors "github.com/spec-kit/restaurant-crm/pkg/util"
)

func intPtr(v int) *int { return &v }

func TestValidateInteractionInput(t *testing.T) {
	cases := map[string]LogInteractionInput{
		"missing lead": {
			ContactID: 2,
			Type:      domain.InteractionTypeCall,
			Status:    domain.InteractionStatusCompleted,
		},
		"missing contact for additional contact": {
			LeadID: 1,
			Type:   domain.InteractionTypeCall,
			Status: domain.InteractionStatusCompleted,
		},
		"unknown type": {
			LeadID:    1,
			ContactID: 2,
			Type:      "carrier-pigeon",
			Status:    domain.InteractionStatusCompleted,
		},
		"rating too high": {
			LeadID:    1,
			ContactID: 2,
			Type:      domain.InteractionTypeEmail,
			Status:    domain.InteractionStatusCompleted,
			Rating:    intPtr(6),
		},
		"rating too low": {
			LeadID:    1,
			ContactID: 2,
			Type:      domain.InteractionTypeEmail,
			Status:    domain.InteractionStatusCompleted,
			Rating:    intPtr(0),
		},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			err := validateInteractionInput(input)
			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		})
	}
}

func TestValidateInteractionInputPrimaryContactNeedsNoContactID(t *testing.T) {
	err := validateInteractionInput(LogInteractionInput{
		LeadID:           1,
		IsPrimaryContact: true,
		Type:             domain.InteractionTypeCall,
		Status:           domain.InteractionStatusCompleted,
	})
	assert.NoError(t, err)
}

func TestLogInteractionWithOrderCreatesOrderFirst(t *testing.T) {
	orders := new(mockOrderRepo)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
		return order.LeadID == 1 && order.TotalAmount == 250 && order.Status == domain.OrderStatusPending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 42
	}).Return(nil)

	interactions := new(mockInteractionRepo)
	interactions.On("Create", mock.Anything, mock.MatchedBy(func(in *domain.Interaction) bool {
		return in.OrderID != nil && *in.OrderID == 42
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Interaction).ID = 9
	}).Return(nil)

	cache := &fakeSnapshotCache{snapshot: &domain.PerformanceSnapshot{}}
	dispatcher := &recordingDispatcher{}
	svc := NewInteractionService(InteractionDependencies{
		InteractionRepo: interactions,
		OrderRepo:       orders,
		LeadRepo:        new(mockLeadRepo),
		Cache:           cache,
		Dispatcher:      dispatcher,
	})

	got, err := svc.LogInteraction(context.Background(), LogInteractionInput{
		LeadID:    1,
		ContactID: 2,
		Type:      domain.InteractionTypeCall,
		Status:    domain.InteractionStatusCompleted,
		Order:     &InteractionOrderInput{TotalAmount: 250},
	})

	require.NoError(t, err)
	require.NotNil(t, got.OrderID)
	assert.Equal(t, int64(42), *got.OrderID)
	assert.Equal(t, 1, cache.invalidations)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventInteractionLogged, dispatcher.published[0].Type)
	orders.AssertExpectations(t)
	interactions.AssertExpectations(t)
}

func TestLogInteractionRejectsNonPositiveOrderAmount(t *testing.T) {
	orders := new(mockOrderRepo)
	svc := NewInteractionService(InteractionDependencies{
		InteractionRepo: new(mockInteractionRepo),
		OrderRepo:       orders,
		LeadRepo:        new(mockLeadRepo),
	})

	_, err := svc.LogInteraction(context.Background(), LogInteractionInput{
		LeadID:    1,
		ContactID: 2,
		Type:      domain.InteractionTypeCall,
		Status:    domain.InteractionStatusCompleted,
		Order:     &InteractionOrderInput{TotalAmount: 0},
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogInteractionPrimaryContactUsesLeadID(t *testing.T) {
	leads := new(mockLeadRepo)
	leads.On("GetByID", mock.Anything, int64(7)).Return(&domain.Lead{ID: 7, RestaurantName: "Busy Bistro"}, nil)

	interactions := new(mockInteractionRepo)
	interactions.On("Create", mock.Anything, mock.MatchedBy(func(in *domain.Interaction) bool {
		return in.ContactID == 7
	})).Return(nil)

	svc := NewInteractionService(InteractionDependencies{
		InteractionRepo: interactions,
		OrderRepo:       new(mockOrderRepo),
		LeadRepo:        leads,
	})

	got, err := svc.LogInteraction(context.Background(), LogInteractionInput{
		LeadID:           7,
		IsPrimaryContact: true,
		Type:             domain.InteractionTypeText,
		Status:           domain.InteractionStatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ContactID)
	interactions.AssertExpectations(t)
}
