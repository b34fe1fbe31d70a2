package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	MarkCompleted(ctx context.Context, id int64) error
	ListRecent(ctx context.Context, limit int) ([]domain.RecentOrder, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (lead_id, total_amount, status, notes)
        VALUES ($1,$2,$3,$4)
        RETURNING id, order_date, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		order.LeadID,
		order.TotalAmount,
		order.Status,
		order.Notes,
	).Scan(&order.ID, &order.OrderDate, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT id, lead_id, order_date, CAST(total_amount AS FLOAT), status, notes, created_at, updated_at
        FROM orders WHERE id=$1`
	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.LeadID,
		&order.OrderDate,
		&order.TotalAmount,
		&order.Status,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) MarkCompleted(ctx context.Context, id int64) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, domain.OrderStatusCompleted, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	if limit <= 0 {
		limit = 5
	}
	const query = `
        SELECT o.id, o.order_date, CAST(o.total_amount AS FLOAT), o.status, l.restaurant_name
        FROM orders o
        INNER JOIN leads l ON o.lead_id = l.id
        ORDER BY o.order_date DESC
        LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RecentOrder
	for rows.Next() {
		var order domain.RecentOrder
		if err := rows.Scan(
			&order.ID,
			&order.OrderDate,
			&order.TotalAmount,
			&order.Status,
			&order.RestaurantName,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
