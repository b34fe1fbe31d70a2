package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// ContactRepository encapsulates additional-contact persistence.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	Update(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context, leadID *int64) ([]domain.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO additional_contacts (lead_id, contact_person, contact_email, contact_phone, role, is_primary)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		contact.LeadID,
		contact.ContactPerson,
		contact.ContactEmail,
		contact.ContactPhone,
		contact.Role,
		contact.IsPrimary,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	const query = `
        UPDATE additional_contacts SET contact_person=$1, contact_email=$2, contact_phone=$3, role=$4,
            is_primary=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		contact.ContactPerson,
		contact.ContactEmail,
		contact.ContactPhone,
		contact.Role,
		contact.IsPrimary,
		contact.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, leadID *int64) ([]domain.Contact, error) {
	const base = `
        SELECT id, lead_id, contact_person, contact_email, contact_phone, role, is_primary, created_at, updated_at
        FROM additional_contacts`

	var (
		rows pgx.Rows
		err  error
	)
	if leadID != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE lead_id=$1 ORDER BY created_at`, *leadID)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY created_at`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Contact
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.LeadID,
			&contact.ContactPerson,
			&contact.ContactEmail,
			&contact.ContactPhone,
			&contact.Role,
			&contact.IsPrimary,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	return result, rows.Err()
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM additional_contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
