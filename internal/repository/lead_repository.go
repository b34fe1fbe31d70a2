package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// LeadRepository encapsulates lead persistence.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	Update(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, status *domain.LeadStatus) ([]domain.Lead, error)
	Delete(ctx context.Context, id int64) error
}

type leadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a Postgres-backed implementation.
func NewLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &leadRepository{pool: pool}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	const query = `
        INSERT INTO leads (restaurant_name, location, type, status, contact_person, contact_email, contact_phone, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		lead.RestaurantName,
		lead.Location,
		lead.Type,
		lead.Status,
		lead.ContactPerson,
		lead.ContactEmail,
		lead.ContactPhone,
		lead.Notes,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *leadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	const query = `
        UPDATE leads SET restaurant_name=$1, location=$2, type=$3, status=$4, contact_person=$5,
            contact_email=$6, contact_phone=$7, notes=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		lead.RestaurantName,
		lead.Location,
		lead.Type,
		lead.Status,
		lead.ContactPerson,
		lead.ContactEmail,
		lead.ContactPhone,
		lead.Notes,
		lead.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	const query = `
        SELECT id, restaurant_name, location, type, status, contact_person, contact_email, contact_phone,
               notes, created_at, updated_at
        FROM leads WHERE id=$1`
	var lead domain.Lead
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.RestaurantName,
		&lead.Location,
		&lead.Type,
		&lead.Status,
		&lead.ContactPerson,
		&lead.ContactEmail,
		&lead.ContactPhone,
		&lead.Notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context, status *domain.LeadStatus) ([]domain.Lead, error) {
	const base = `
        SELECT id, restaurant_name, location, type, status, contact_person, contact_email, contact_phone,
               notes, created_at, updated_at
        FROM leads`

	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE status=$1 ORDER BY created_at DESC`, *status)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.RestaurantName,
			&lead.Location,
			&lead.Type,
			&lead.Status,
			&lead.ContactPerson,
			&lead.ContactEmail,
			&lead.ContactPhone,
			&lead.Notes,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, lead)
	}
	return result, rows.Err()
}

func (r *leadRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
