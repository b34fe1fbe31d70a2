package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-crm/internal/domain"
	"github.com/spec-kit/restaurant-crm/internal/repository"
)

const (
	lowPerformingOrderThreshold  = 5
	lowPerformingRatingThreshold = 3.0
)

// SnapshotCache abstracts the reporting cache so services stay
// testable without Redis.
type SnapshotCache interface {
	Get(ctx context.Context) (*domain.PerformanceSnapshot, error)
	Set(ctx context.Context, snapshot *domain.PerformanceSnapshot) error
	Invalidate(ctx context.Context) error
}

// PerformanceService produces the combined reporting snapshot.
type PerformanceService struct {
	perf   repository.PerformanceRepository
	cache  SnapshotCache
	logger *zap.Logger
	now    func() time.Time
}

// PerformanceDependencies bundles collaborators for the service.
type PerformanceDependencies struct {
	PerformanceRepo repository.PerformanceRepository
	Cache           SnapshotCache
	Logger          *zap.Logger
}

// NewPerformanceService constructs the service.
func NewPerformanceService(deps PerformanceDependencies) *PerformanceService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PerformanceService{
		perf:   deps.PerformanceRepo,
		cache:  deps.Cache,
		logger: logger,
		now:    time.Now,
	}
}

// Fetch assembles the performance snapshot: per-lead revenue and
// rating rollups, the current month's totals and daily breakdown, the
// future pipeline, and the derived low-performing list. The five
// queries are independent reads; any failure aborts the whole fetch.
// A cached snapshot is served when present; cache failures only
// degrade to direct reads.
func (s *PerformanceService) Fetch(ctx context.Context) (*domain.PerformanceSnapshot, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	now := s.now()
	monthStart, nextMonthStart := monthWindow(now)

	revenue, err := s.perf.RevenueByLead(ctx)
	if err != nil {
		return nil, err
	}
	rating, err := s.perf.RatingByLead(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := s.perf.RevenueTotals(ctx, monthStart, nextMonthStart)
	if err != nil {
		return nil, err
	}
	potential, err := s.perf.PotentialTotals(ctx, now)
	if err != nil {
		return nil, err
	}
	daily, err := s.perf.DailyRevenue(ctx, monthStart, nextMonthStart)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.PerformanceSnapshot{
		RevenueByLead:         revenue,
		RatingByLead:          rating,
		LowPerformingLeads:    lowPerformingLeads(revenue, rating),
		MonthlyRevenue:        monthly,
		PotentialRevenue:      potential,
		DailyRevenueBreakdown: daily,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot); err != nil {
			s.logger.Warn("failed to cache performance snapshot", zap.Error(err))
		}
	}
	return snapshot, nil
}

// monthWindow returns the half-open [start of month, start of next
// month) interval containing t, in t's location. An order stamped at
// the first instant of the month is inside; the first instant of the
// next month is outside.
func monthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// lowPerformingLeads filters the revenue rollup to leads with fewer
// than 5 orders or an average rating under 3 (missing rating counts
// as 0), sorted ascending by total revenue with nil treated as 0. It
// is a pure derivation over the two already-fetched result sets so it
// stays consistent with whichever snapshot produced them.
func lowPerformingLeads(revenue []domain.LeadRevenue, rating []domain.LeadRating) []domain.LeadRevenue {
	ratingByLead := make(map[int64]float64, len(rating))
	for _, entry := range rating {
		if entry.AvgRating != nil {
			ratingByLead[entry.LeadID] = *entry.AvgRating
		}
	}

	low := make([]domain.LeadRevenue, 0, len(revenue))
	for _, lead := range revenue {
		if lead.OrderCount < lowPerformingOrderThreshold || ratingByLead[lead.LeadID] < lowPerformingRatingThreshold {
			low = append(low, lead)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return revenueOrZero(low[i]) < revenueOrZero(low[j])
	})
	return low
}

func revenueOrZero(lead domain.LeadRevenue) float64 {
	if lead.TotalRevenue == nil {
		return 0
	}
	return *lead.TotalRevenue
}
