package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func revenueRow(leadID int64, name string, total *float64, orders int) domain.LeadRevenue {
	return domain.LeadRevenue{LeadID: leadID, RestaurantName: name, TotalRevenue: total, OrderCount: orders}
}

func TestLowPerformingLeadsFilters(t *testing.T) {
	revenue := []domain.LeadRevenue{
		revenueRow(1, "Busy Bistro", floatPtr(900), 10),
		revenueRow(2, "Quiet Corner", floatPtr(120), 2),
		revenueRow(3, "Sour Grapes", floatPtr(500), 8),
		revenueRow(4, "No Orders Yet", nil, 0),
	}
	rating := []domain.LeadRating{
		{LeadID: 1, AvgRating: floatPtr(4.5)},
		{LeadID: 2, AvgRating: floatPtr(4.0)},
		{LeadID: 3, AvgRating: floatPtr(2.1)},
	}

	low := lowPerformingLeads(revenue, rating)

	ids := make([]int64, 0, len(low))
	for _, lead := range low {
		ids = append(ids, lead.LeadID)
	}
	// lead 1 performs well on both axes; 2 has too few orders, 3 is
	// rated under 3, 4 has no orders and no rating.
	assert.NotContains(t, ids, int64(1))
	assert.ElementsMatch(t, []int64{2, 3, 4}, ids)
}

func TestLowPerformingLeadsMissingRatingCountsAsZero(t *testing.T) {
	revenue := []domain.LeadRevenue{
		revenueRow(5, "Unrated", floatPtr(2000), 20),
	}

	low := lowPerformingLeads(revenue, nil)

	require.Len(t, low, 1)
	assert.Equal(t, int64(5), low[0].LeadID)
}

func TestLowPerformingLeadsSortedByRevenueAscending(t *testing.T) {
	revenue := []domain.LeadRevenue{
		revenueRow(1, "Mid", floatPtr(300), 1),
		revenueRow(2, "None", nil, 0),
		revenueRow(3, "Low", floatPtr(50), 1),
	}

	low := lowPerformingLeads(revenue, nil)

	require.Len(t, low, 3)
	// nil revenue sorts as zero, first.
	assert.Equal(t, int64(2), low[0].LeadID)
	assert.Equal(t, int64(3), low[1].LeadID)
	assert.Equal(t, int64(1), low[2].LeadID)
}

func TestMonthWindowBoundaries(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

	start, end := monthWindow(now)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindowYearRollover(t *testing.T) {
	now := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)

	start, end := monthWindow(now)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestFetchAssemblesSnapshotAndCaches(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	revenue := []domain.LeadRevenue{revenueRow(1, "Busy Bistro", floatPtr(900), 10)}
	rating := []domain.LeadRating{{LeadID: 1, AvgRating: floatPtr(4.2)}}
	daily := []domain.DailyRevenue{{Date: monthStart, DailyRevenue: 120}}

	repo := new(mockPerformanceRepo)
	repo.On("RevenueByLead", mock.Anything).Return(revenue, nil)
	repo.On("RatingByLead", mock.Anything).Return(rating, nil)
	repo.On("RevenueTotals", mock.Anything, monthStart, nextMonth).Return(domain.RevenueTotals{TotalRevenue: floatPtr(900), OrderCount: 10}, nil)
	repo.On("PotentialTotals", mock.Anything, now).Return(domain.PotentialTotals{TotalPotentialRevenue: floatPtr(400), PotentialOrderCount: 2}, nil)
	repo.On("DailyRevenue", mock.Anything, monthStart, nextMonth).Return(daily, nil)

	cache := &fakeSnapshotCache{}
	svc := NewPerformanceService(PerformanceDependencies{PerformanceRepo: repo, Cache: cache})
	svc.now = func() time.Time { return now }

	snapshot, err := svc.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, revenue, snapshot.RevenueByLead)
	assert.Equal(t, rating, snapshot.RatingByLead)
	assert.Empty(t, snapshot.LowPerformingLeads)
	assert.Equal(t, 10, snapshot.MonthlyRevenue.OrderCount)
	assert.Equal(t, 2, snapshot.PotentialRevenue.PotentialOrderCount)
	assert.Equal(t, daily, snapshot.DailyRevenueBreakdown)
	assert.Equal(t, 1, cache.sets)
	repo.AssertExpectations(t)
}

func TestFetchServesCachedSnapshot(t *testing.T) {
	cached := &domain.PerformanceSnapshot{MonthlyRevenue: domain.RevenueTotals{OrderCount: 3}}
	cache := &fakeSnapshotCache{snapshot: cached}

	repo := new(mockPerformanceRepo)
	svc := NewPerformanceService(PerformanceDependencies{PerformanceRepo: repo, Cache: cache})

	snapshot, err := svc.Fetch(context.Background())

	require.NoError(t, err)
	assert.Same(t, cached, snapshot)
	repo.AssertNotCalled(t, "RevenueByLead", mock.Anything)
}

func TestFetchPropagatesQueryError(t *testing.T) {
	repo := new(mockPerformanceRepo)
	repo.On("RevenueByLead", mock.Anything).Return(nil, assert.AnError)

	svc := NewPerformanceService(PerformanceDependencies{PerformanceRepo: repo})

	_, err := svc.Fetch(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
