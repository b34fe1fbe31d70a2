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

func TestCreateLeadRequiresCoreFields(t *testing.T) {
	svc := NewLeadService(LeadDependencies{LeadRepo: new(mockLeadRepo)})

	_, err := svc.CreateLead(context.Background(), LeadInput{RestaurantName: "  ", Location: "Lagos"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "restaurant_name")
	assert.Contains(t, domainErr.Details, "type")
}

func TestCreateLeadDefaultsStatusAndPublishes(t *testing.T) {
	repo := new(mockLeadRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(lead *domain.Lead) bool {
		return lead.Status == domain.LeadStatusNew && lead.RestaurantName == "Busy Bistro"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Lead).ID = 3
	}).Return(nil)

	dispatcher := &recordingDispatcher{}
	svc := NewLeadService(LeadDependencies{LeadRepo: repo, Dispatcher: dispatcher})

	lead, err := svc.CreateLead(context.Background(), LeadInput{
		RestaurantName: " Busy Bistro ",
		Location:       "Lagos",
		Type:           "restaurant",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), lead.ID)
	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventLeadCreated, dispatcher.published[0].Type)
	repo.AssertExpectations(t)
}

func TestUpdateLeadUnknownIDReportsNotFound(t *testing.T) {
	repo := new(mockLeadRepo)
	repo.On("GetByID", mock.Anything, int64(8)).Return(nil, pgx.ErrNoRows)

	svc := NewLeadService(LeadDependencies{LeadRepo: repo})

	_, err := svc.UpdateLead(context.Background(), 8, LeadInput{
		RestaurantName: "Busy Bistro",
		Location:       "Lagos",
		Type:           "restaurant",
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestDeleteLeadInvalidatesSnapshot(t *testing.T) {
	repo := new(mockLeadRepo)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)

	cache := &fakeSnapshotCache{snapshot: &domain.PerformanceSnapshot{}}
	svc := NewLeadService(LeadDependencies{LeadRepo: repo, Cache: cache})

	require.NoError(t, svc.DeleteLead(context.Background(), 3))
	assert.Equal(t, 1, cache.invalidations)
}
