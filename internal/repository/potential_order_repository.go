package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// PotentialOrderRepository encapsulates forecast persistence.
type PotentialOrderRepository interface {
	Create(ctx context.Context, po *domain.PotentialOrder) error
	ListUpcoming(ctx context.Context, limit int) ([]domain.UpcomingPotentialOrder, error)
}

type potentialOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPotentialOrderRepository returns a Postgres-backed implementation.
func NewPotentialOrderRepository(pool *pgxpool.Pool) PotentialOrderRepository {
	return &potentialOrderRepository{pool: pool}
}

func (r *potentialOrderRepository) Create(ctx context.Context, po *domain.PotentialOrder) error {
	const query = `
        INSERT INTO potential_orders (lead_id, expected_date, estimated_amount, probability, notes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		po.LeadID,
		po.ExpectedDate,
		po.EstimatedAmount,
		po.Probability,
		po.Notes,
	).Scan(&po.ID, &po.CreatedAt, &po.UpdatedAt)
}

func (r *potentialOrderRepository) ListUpcoming(ctx context.Context, limit int) ([]domain.UpcomingPotentialOrder, error) {
	if limit <= 0 {
		limit = 5
	}
	const query = `
        SELECT p.id, p.expected_date, CAST(p.estimated_amount AS FLOAT), p.probability, l.restaurant_name
        FROM potential_orders p
        INNER JOIN leads l ON p.lead_id = l.id
        ORDER BY p.expected_date ASC
        LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.UpcomingPotentialOrder
	for rows.Next() {
		var po domain.UpcomingPotentialOrder
		if err := rows.Scan(
			&po.ID,
			&po.ExpectedDate,
			&po.EstimatedAmount,
			&po.Probability,
			&po.RestaurantName,
		); err != nil {
			return nil, err
		}
		result = append(result, po)
	}
	return result, rows.Err()
}
