package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-crm/internal/domain"
)

// ScheduledCallRepository encapsulates scheduled-call persistence,
// including the transactional completion write.
type ScheduledCallRepository interface {
	Create(ctx context.Context, call *domain.ScheduledCall) error
	GetByID(ctx context.Context, id int64) (*domain.ScheduledCall, error)
	ListUpcoming(ctx context.Context) ([]domain.UpcomingCall, error)
	Complete(ctx context.Context, call *domain.ScheduledCall) (*domain.Interaction, error)
	Cancel(ctx context.Context, id int64) error
}

type scheduledCallRepository struct {
	pool *pgxpool.Pool
}

// NewScheduledCallRepository returns a Postgres-backed implementation.
func NewScheduledCallRepository(pool *pgxpool.Pool) ScheduledCallRepository {
	return &scheduledCallRepository{pool: pool}
}

func (r *scheduledCallRepository) Create(ctx context.Context, call *domain.ScheduledCall) error {
	const query = `
        INSERT INTO scheduled_calls (lead_id, contact_id, scheduled_date, duration, notes, status, reminder_sent)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		call.LeadID,
		call.ContactID,
		call.ScheduledDate,
		call.Duration,
		call.Notes,
		call.Status,
		call.ReminderSent,
	).Scan(&call.ID, &call.CreatedAt, &call.UpdatedAt)
}

func (r *scheduledCallRepository) GetByID(ctx context.Context, id int64) (*domain.ScheduledCall, error) {
	const query = `
        SELECT id, lead_id, contact_id, scheduled_date, duration, notes, status, reminder_sent, created_at, updated_at
        FROM scheduled_calls WHERE id=$1`
	var call domain.ScheduledCall
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&call.ID,
		&call.LeadID,
		&call.ContactID,
		&call.ScheduledDate,
		&call.Duration,
		&call.Notes,
		&call.Status,
		&call.ReminderSent,
		&call.CreatedAt,
		&call.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *scheduledCallRepository) ListUpcoming(ctx context.Context) ([]domain.UpcomingCall, error) {
	const query = `
        SELECT sc.id, sc.scheduled_date, sc.duration, sc.notes, sc.status, l.restaurant_name, ac.contact_person
        FROM scheduled_calls sc
        LEFT JOIN leads l ON sc.lead_id = l.id
        LEFT JOIN additional_contacts ac ON sc.contact_id = ac.id
        WHERE sc.status=$1 AND sc.scheduled_date > NOW()
        ORDER BY sc.scheduled_date ASC`
	rows, err := r.pool.Query(ctx, query, domain.CallStatusScheduled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.UpcomingCall
	for rows.Next() {
		var call domain.UpcomingCall
		if err := rows.Scan(
			&call.ID,
			&call.ScheduledDate,
			&call.Duration,
			&call.Notes,
			&call.Status,
			&call.RestaurantName,
			&call.ContactPerson,
		); err != nil {
			return nil, err
		}
		result = append(result, call)
	}
	return result, rows.Err()
}

// Complete records the interaction and flips the call to completed in
// one transaction. The status change is guarded so only a call still
// in scheduled state transitions; a zero-row update rolls everything
// back and surfaces pgx.ErrNoRows.
func (r *scheduledCallRepository) Complete(ctx context.Context, call *domain.ScheduledCall) (*domain.Interaction, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	duration := call.Duration
	interaction := &domain.Interaction{
		LeadID:    call.LeadID,
		ContactID: call.ContactID,
		Type:      domain.InteractionTypeCall,
		Status:    domain.InteractionStatusCompleted,
		Notes:     call.Notes,
		Duration:  &duration,
	}

	const insertQuery = `
        INSERT INTO interactions (lead_id, contact_id, type, status, notes, duration)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insertQuery,
		interaction.LeadID,
		interaction.ContactID,
		interaction.Type,
		interaction.Status,
		interaction.Notes,
		interaction.Duration,
	).Scan(&interaction.ID, &interaction.CreatedAt); err != nil {
		return nil, err
	}

	const updateQuery = `
        UPDATE scheduled_calls SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3`
	cmd, err := tx.Exec(ctx, updateQuery, domain.CallStatusCompleted, call.ID, domain.CallStatusScheduled)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	call.Status = domain.CallStatusCompleted
	return interaction, nil
}

func (r *scheduledCallRepository) Cancel(ctx context.Context, id int64) error {
	const query = `
        UPDATE scheduled_calls SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3`
	cmd, err := r.pool.Exec(ctx, query, domain.CallStatusCancelled, id, domain.CallStatusScheduled)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
