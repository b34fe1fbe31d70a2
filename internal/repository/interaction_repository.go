package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// InteractionRepository encapsulates interaction persistence.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	List(ctx context.Context) ([]domain.Interaction, error)
	CountByLead(ctx context.Context) ([]domain.LeadInteractionCount, error)
}

type interactionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository returns a Postgres-backed implementation.
func NewInteractionRepository(pool *pgxpool.Pool) InteractionRepository {
	return &interactionRepository{pool: pool}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	const query = `
        INSERT INTO interactions (lead_id, contact_id, type, status, notes, duration, rating, order_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		interaction.LeadID,
		interaction.ContactID,
		interaction.Type,
		interaction.Status,
		interaction.Notes,
		interaction.Duration,
		interaction.Rating,
		interaction.OrderID,
	).Scan(&interaction.ID, &interaction.CreatedAt)
}

func (r *interactionRepository) List(ctx context.Context) ([]domain.Interaction, error) {
	const query = `
        SELECT id, lead_id, contact_id, type, status, notes, duration, rating, order_id, created_at
        FROM interactions ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Interaction
	for rows.Next() {
		var interaction domain.Interaction
		if err := rows.Scan(
			&interaction.ID,
			&interaction.LeadID,
			&interaction.ContactID,
			&interaction.Type,
			&interaction.Status,
			&interaction.Notes,
			&interaction.Duration,
			&interaction.Rating,
			&interaction.OrderID,
			&interaction.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, interaction)
	}
	return result, rows.Err()
}

func (r *interactionRepository) CountByLead(ctx context.Context) ([]domain.LeadInteractionCount, error) {
	const query = `
        SELECT l.id, l.restaurant_name, COUNT(i.id)
        FROM leads l
        LEFT JOIN interactions i ON i.lead_id = l.id
        GROUP BY l.id, l.restaurant_name
        ORDER BY COUNT(i.id) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeadInteractionCount
	for rows.Next() {
		var count domain.LeadInteractionCount
		if err := rows.Scan(&count.LeadID, &count.RestaurantName, &count.InteractionCount); err != nil {
			return nil, err
		}
		result = append(result, count)
	}
	return result, rows.Err()
}
