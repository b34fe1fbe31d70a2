package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// PerformanceRepository issues the reporting aggregates. Each query
// is consistent on its own; there is no snapshot isolation across
// them. Monetary aggregates are cast to float in SQL so the decimal
// columns surface as float64.
type PerformanceRepository interface {
	RevenueByLead(ctx context.Context) ([]domain.LeadRevenue, error)
	RatingByLead(ctx context.Context) ([]domain.LeadRating, error)
	RevenueTotals(ctx context.Context, from, to time.Time) (domain.RevenueTotals, error)
	PotentialTotals(ctx context.Context, after time.Time) (domain.PotentialTotals, error)
	DailyRevenue(ctx context.Context, from, to time.Time) ([]domain.DailyRevenue, error)
}

type performanceRepository struct {
	pool *pgxpool.Pool
}

// NewPerformanceRepository returns a Postgres-backed implementation.
func NewPerformanceRepository(pool *pgxpool.Pool) PerformanceRepository {
	return &performanceRepository{pool: pool}
}

func (r *performanceRepository) RevenueByLead(ctx context.Context) ([]domain.LeadRevenue, error) {
	const query = `
        SELECT l.id, l.restaurant_name,
               CAST(SUM(o.total_amount) AS FLOAT),
               COUNT(o.id),
               CAST(AVG(o.total_amount) AS FLOAT),
               MAX(o.order_date)
        FROM leads l
        LEFT JOIN orders o ON o.lead_id = l.id
        GROUP BY l.id, l.restaurant_name
        ORDER BY SUM(o.total_amount) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeadRevenue
	for rows.Next() {
		var rev domain.LeadRevenue
		if err := rows.Scan(
			&rev.LeadID,
			&rev.RestaurantName,
			&rev.TotalRevenue,
			&rev.OrderCount,
			&rev.AvgOrderValue,
			&rev.LastOrderDate,
		); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	return result, rows.Err()
}

func (r *performanceRepository) RatingByLead(ctx context.Context) ([]domain.LeadRating, error) {
	const query = `
        SELECT l.id, l.restaurant_name,
               CAST(AVG(i.rating) AS FLOAT),
               COUNT(i.id),
               MAX(i.created_at)
        FROM leads l
        LEFT JOIN interactions i ON i.lead_id = l.id
        GROUP BY l.id, l.restaurant_name
        ORDER BY AVG(i.rating) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeadRating
	for rows.Next() {
		var rating domain.LeadRating
		if err := rows.Scan(
			&rating.LeadID,
			&rating.RestaurantName,
			&rating.AvgRating,
			&rating.InteractionCount,
			&rating.LastInteractionDate,
		); err != nil {
			return nil, err
		}
		result = append(result, rating)
	}
	return result, rows.Err()
}

func (r *performanceRepository) RevenueTotals(ctx context.Context, from, to time.Time) (domain.RevenueTotals, error) {
	const query = `
        SELECT CAST(SUM(total_amount) AS FLOAT), COUNT(id)
        FROM orders
        WHERE order_date >= $1 AND order_date < $2`
	var totals domain.RevenueTotals
	err := r.pool.QueryRow(ctx, query, from, to).Scan(&totals.TotalRevenue, &totals.OrderCount)
	return totals, err
}

func (r *performanceRepository) PotentialTotals(ctx context.Context, after time.Time) (domain.PotentialTotals, error) {
	const query = `
        SELECT CAST(SUM(estimated_amount) AS FLOAT), COUNT(id)
        FROM potential_orders
        WHERE expected_date > $1`
	var totals domain.PotentialTotals
	err := r.pool.QueryRow(ctx, query, after).Scan(&totals.TotalPotentialRevenue, &totals.PotentialOrderCount)
	return totals, err
}

func (r *performanceRepository) DailyRevenue(ctx context.Context, from, to time.Time) ([]domain.DailyRevenue, error) {
	const query = `
        SELECT DATE(order_date), CAST(SUM(total_amount) AS FLOAT)
        FROM orders
        WHERE order_date >= $1 AND order_date < $2
        GROUP BY DATE(order_date)
        ORDER BY DATE(order_date)`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DailyRevenue
	for rows.Next() {
		var day domain.DailyRevenue
		if err := rows.Scan(&day.Date, &day.DailyRevenue); err != nil {
			return nil, err
		}
		result = append(result, day)
	}
	return result, rows.Err()
}
